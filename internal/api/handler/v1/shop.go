package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
)

type ShopService interface {
	ListShops(ctx context.Context) ([]record.Record, error)
}

type ShopHandler struct {
	svc ShopService
}

func NewShopHandler(svc ShopService) *ShopHandler {
	return &ShopHandler{
		svc: svc,
	}
}

// HandleListShops godoc
// @Summary      List shops
// @Tags         shops
// @Produce      json
// @Success      200  {object}  response.ShopsResponse
// @Failure      500  {object}  response.Err
// @Router       /shops [get]
func (h *ShopHandler) HandleListShops(ctx *gin.Context) {
	shops, err := h.svc.ListShops(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListShops -> h.svc.ListShops -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ShopsResponse{Shops: shops})
}
