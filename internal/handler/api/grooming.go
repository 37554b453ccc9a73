package api

import (
	"net/http"

	resdto "dogbarber-api/internal/handler/dto/response"
	"dogbarber-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GroomingHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewGroomingHandler(catalogUseCase usecase.CatalogUseCase) *GroomingHandler {
	return &GroomingHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List grooming types
// @Description List the grooming catalog with prices and durations
// @Tags grooming-types
// @Produce json
// @Success 200 {array} resdto.GroomingTypeResponse
// @Router /groomingtypes [get]
func (h *GroomingHandler) List(c *gin.Context) {
	entries, err := h.catalogUseCase.ListGroomingTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GroomingTypeResponse, len(entries))
	for i, rm := range entries {
		response[i] = resdto.FromGroomingTypeRM(rm)
	}

	c.JSON(http.StatusOK, response)
}
