package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

// List wraps a store snapshot together with its loading/error state so
// consumers can render the same state machine the stores expose.
func List[T any](c *gin.Context, data []T, loading bool, errMsg string) {
	c.JSON(200, ListResponse[T]{
		Data:    data,
		Total:   len(data),
		Loading: loading,
		Error:   errMsg,
	})
}
