package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/service"
)

type TreasureService interface {
	ListTreasures(ctx context.Context, sortBy, order, colour string) ([]record.Record, error)
	CreateTreasure(ctx context.Context, t domain.Treasure) (record.Record, error)
	UpdateTreasurePrice(ctx context.Context, id int, cost float64) (record.Record, error)
	DeleteTreasure(ctx context.Context, id int) error
}

type TreasureHandler struct {
	svc TreasureService
}

func NewTreasureHandler(svc TreasureService) *TreasureHandler {
	return &TreasureHandler{
		svc: svc,
	}
}

// HandleListTreasures godoc
// @Summary      List treasures
// @Description  Lists treasures joined with the name of the shop selling them.
// @Tags         treasures
// @Produce      json
// @Param        sort_by  query     string  false  "Sort column"  Enums(age, cost_at_auction, treasure_name)  default(age)
// @Param        order    query     string  false  "Sort order"   Enums(asc, desc)                             default(asc)
// @Param        colour   query     string  false  "Only treasures of this colour"
// @Success      200      {object}  response.TreasuresResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /treasures [get]
func (h *TreasureHandler) HandleListTreasures(ctx *gin.Context) {
	var req request.ListTreasuresRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	treasures, err := h.svc.ListTreasures(ctx.Request.Context(), req.SortBy, req.Order, req.Colour)
	if err != nil {
		err = fmt.Errorf("HandleListTreasures -> h.svc.ListTreasures -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TreasuresResponse{Treasures: treasures})
}

// HandleCreateTreasure godoc
// @Summary      Create a treasure
// @Tags         treasures
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTreasureRequest  true  "Treasure details"
// @Success      201    {object}  response.TreasureResponse
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /treasures [post]
func (h *TreasureHandler) HandleCreateTreasure(ctx *gin.Context) {
	var input request.CreateTreasureRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	created, err := h.svc.CreateTreasure(ctx.Request.Context(), input.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateTreasure -> h.svc.CreateTreasure -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.TreasureResponse{Treasure: created})
}

// HandleUpdateTreasurePrice godoc
// @Summary      Update the price of a treasure
// @Tags         treasures
// @Accept       json
// @Produce      json
// @Param        treasure_id  path      int                                 true  "Treasure ID"
// @Param        input        body      request.UpdateTreasurePriceRequest  true  "New price"
// @Success      200          {object}  response.TreasureResponse
// @Failure      404          {object}  response.Err
// @Failure      422          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /treasures/{treasure_id} [patch]
func (h *TreasureHandler) HandleUpdateTreasurePrice(ctx *gin.Context) {
	treasureID, err := strconv.Atoi(ctx.Param("treasure_id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(fmt.Errorf("invalid treasure ID: %w", err)))
		return
	}

	var input request.UpdateTreasurePriceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	updated, err := h.svc.UpdateTreasurePrice(ctx.Request.Context(), treasureID, *input.CostAtAuction)
	if err != nil {
		if errors.Is(err, service.ErrTreasureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("treasure", treasureID))
			return
		}

		err = fmt.Errorf("HandleUpdateTreasurePrice -> h.svc.UpdateTreasurePrice -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TreasureResponse{Treasure: updated})
}

// HandleDeleteTreasure godoc
// @Summary      Delete a treasure
// @Tags         treasures
// @Param        treasure_id  path  int  true  "Treasure ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /treasures/{treasure_id} [delete]
func (h *TreasureHandler) HandleDeleteTreasure(ctx *gin.Context) {
	treasureID, err := strconv.Atoi(ctx.Param("treasure_id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(fmt.Errorf("invalid treasure ID: %w", err)))
		return
	}

	if err = h.svc.DeleteTreasure(ctx.Request.Context(), treasureID); err != nil {
		if errors.Is(err, service.ErrTreasureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("treasure", treasureID))
			return
		}

		err = fmt.Errorf("HandleDeleteTreasure -> h.svc.DeleteTreasure -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
