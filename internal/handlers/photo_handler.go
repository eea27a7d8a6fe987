package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/restoservice/repair-admin/internal/audit"
	"github.com/restoservice/repair-admin/internal/cache"
	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/httpresp"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/imageproc"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/storage"
	"github.com/restoservice/repair-admin/internal/store"
)

const maxPhotoSize = 10 << 20 // 10 MB per upload

type PhotoHandler struct {
	orders   *store.OrderStore
	uploader storage.Uploader
	audit    *audit.Dispatcher
	tracking *cache.TrackingCache
}

func NewPhotoHandler(
	orders *store.OrderStore,
	uploader storage.Uploader,
	dispatcher *audit.Dispatcher,
	tracking *cache.TrackingCache,
) *PhotoHandler {
	return &PhotoHandler{
		orders:   orders,
		uploader: uploader,
		audit:    dispatcher,
		tracking: tracking,
	}
}

// Upload converts the received image to webp, stores it and appends
// the resulting URL to the order's photo list.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	branchID := c.MustGet(middleware.ContextBranchID).(string)
	id := c.Param("id")

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A 'photo' file field is required.")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		httperr.BadRequest(c, "photo_too_large", "The photo exceeds the 10 MB limit.")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded file.")
		return
	}

	encoded, err := imageproc.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a supported image.")
		return
	}

	key := fmt.Sprintf("orders/%s/%s.webp", id, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	o, found, err := h.orders.Mutate(c.Request.Context(), id, func(o *models.RepairOrder) error {
		o.Photos = append(o.Photos, url)
		return nil
	})
	if !found {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Could not attach the photo to the order.")
		return
	}

	h.tracking.Invalidate(c.Request.Context(), o.OrderNumber)

	h.audit.Dispatch(audit.Event{
		BranchID: branchID,
		UserID:   &userID,
		Action:   "order_photo_added",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]any{"url": url},
	})

	httpresp.OK(c, gin.H{"url": url, "order": o})
}
