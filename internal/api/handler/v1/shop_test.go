package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
)

type fakeShopService struct {
	shops []record.Record
	err   error
}

func (f *fakeShopService) ListShops(context.Context) ([]record.Record, error) {
	return f.shops, f.err
}

func newShopRouter(svc ShopService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/shops", NewShopHandler(svc).HandleListShops)
	r.GET("/", HandleHealthcheck)
	return r
}

func TestHandleListShops(t *testing.T) {
	shop := record.New()
	shop.Set("shop_id", int64(1))
	shop.Set("shop_name", "shop-a")
	r := newShopRouter(&fakeShopService{shops: []record.Record{shop}})

	rec := serve(r, http.MethodGet, "/api/shops", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shops":[{"shop_id":1,"shop_name":"shop-a"}]}`, rec.Body.String())
}

func TestHandleListShops_Failure(t *testing.T) {
	r := newShopRouter(&fakeShopService{err: errors.New("boom")})

	rec := serve(r, http.MethodGet, "/api/shops", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestHandleHealthcheck(t *testing.T) {
	r := newShopRouter(&fakeShopService{})

	rec := serve(r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
