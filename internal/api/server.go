package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/docs"
	v1 "github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/config"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	store := dao.NewStore(db)
	treasureHandler := s.initTreasureHandler(store)
	shopHandler := s.initShopHandler(store)
	s.MountHandlers(treasureHandler, shopHandler)

	return s
}

func (s *Server) initTreasureHandler(store *dao.Store) *v1.TreasureHandler {
	treasureDAO := dao.NewTreasureDAO(store)
	repo := repository.NewTreasureRepository(treasureDAO)
	svc := service.NewTreasureService(repo)
	handler := v1.NewTreasureHandler(svc)

	return handler
}

func (s *Server) initShopHandler(store *dao.Store) *v1.ShopHandler {
	shopDAO := dao.NewShopDAO(store)
	repo := repository.NewShopRepository(shopDAO)
	svc := service.NewShopService(repo)
	handler := v1.NewShopHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(treasureHandler *v1.TreasureHandler, shopHandler *v1.ShopHandler) {
	const basePath = "/api"

	api := s.Router.Group(basePath)
	{
		api.GET("/treasures", treasureHandler.HandleListTreasures)
		api.POST("/treasures", treasureHandler.HandleCreateTreasure)
		api.PATCH("/treasures/:treasure_id", treasureHandler.HandleUpdateTreasurePrice)
		api.DELETE("/treasures/:treasure_id", treasureHandler.HandleDeleteTreasure)

		api.GET("/shops", shopHandler.HandleListShops)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	s.Router.NoRoute(func(ctx *gin.Context) {
		response.RenderErr(ctx, response.ErrRouteNotFound())
	})
	s.Router.NoMethod(func(ctx *gin.Context) {
		response.RenderErr(ctx, response.ErrMethodNotAllowed())
	})

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "NC Rare Treasures API"
	docs.SwaggerInfo.Description = "Treasures and the shops that sell them."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
