package http

import (
	"LiveDesk/internal/config"
	"LiveDesk/internal/initial"
	jwtMiddleware "LiveDesk/internal/middleware/jwt"
	chatService "LiveDesk/internal/modules/chat/application/service"
	chatPersistence "LiveDesk/internal/modules/chat/infrastructure/persistence"
	chatHandler "LiveDesk/internal/modules/chat/interface/http"
	etiquetteService "LiveDesk/internal/modules/etiquette/application/service"
	etiquettePersistence "LiveDesk/internal/modules/etiquette/infrastructure/persistence"
	etiquetteHandler "LiveDesk/internal/modules/etiquette/interface/http"
	inboxService "LiveDesk/internal/modules/inbox/application/service"
	inboxPersistence "LiveDesk/internal/modules/inbox/infrastructure/persistence"
	inboxHandler "LiveDesk/internal/modules/inbox/interface/http"
	widgetService "LiveDesk/internal/modules/widget/application/service"
	widgetPersistence "LiveDesk/internal/modules/widget/infrastructure/persistence"
	widgetHandler "LiveDesk/internal/modules/widget/interface/http"
	"LiveDesk/pkg/ssl"
	"LiveDesk/pkg/ws"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var GE *gin.Engine

func init() {
	GE = gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))
	if config.GetConfig().MainConfig.EnableTls {
		GE.Use(ssl.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))
	}

	wsHub := ws.NewHub()

	messageRepo := chatPersistence.NewMessageRepository(initial.GormDB)
	conversationRepo := chatPersistence.NewConversationRepository(initial.GormDB)
	uow := chatPersistence.NewChatUnitOfWork(initial.GormDB)
	etiquetteRepo := etiquettePersistence.NewEtiquetteRepository(initial.GormDB)
	inboxRepo := inboxPersistence.NewInboxRepository(initial.GormDB)
	widgetRepo := widgetPersistence.NewWidgetSettingsRepository(initial.GormDB)

	realtimeSvc := chatService.NewRealtimeService(uow, conversationRepo, wsHub)
	messageSvc := chatService.NewMessageService(messageRepo, conversationRepo)
	conversationSvc := chatService.NewConversationService(conversationRepo, etiquetteRepo)
	etiquetteSvc := etiquetteService.NewEtiquetteService(etiquetteRepo)
	inboxSvc := inboxService.NewInboxService(inboxRepo, conversationRepo)
	widgetSvc := widgetService.NewWidgetSettingsService(widgetRepo)

	wsH := chatHandler.NewWsHandler(wsHub, realtimeSvc)
	messageH := chatHandler.NewMessageHandler(messageSvc, realtimeSvc)
	conversationH := chatHandler.NewConversationHandler(conversationSvc)
	etiquetteH := etiquetteHandler.NewEtiquetteHandler(etiquetteSvc)
	inboxH := inboxHandler.NewInboxHandler(inboxSvc)
	widgetH := widgetHandler.NewWidgetSettingsHandler(widgetSvc)

	GE.GET("/ws", wsH.Connect)
	GE.GET("/messages/public", messageH.PublicHistory)
	GE.GET("/public/widget-settings", widgetH.PublicGet)

	authed := GE.Group("/")
	authed.Use(jwtMiddleware.Auth())
	authed.GET("/messages", messageH.History)
	authed.POST("/messages", messageH.Send)
	authed.GET("/messages/rooms", messageH.ListRooms)
	authed.GET("/presence/agents", wsH.OnlineAgents)

	authed.GET("/conversations", conversationH.List)
	authed.GET("/conversations/by-room/:roomId", conversationH.GetByRoom)
	authed.PATCH("/conversations/:id/inbox", conversationH.MoveInbox)
	authed.PATCH("/conversations/:id/assign", conversationH.Assign)
	authed.PATCH("/conversations/:id/status", conversationH.UpdateStatus)
	authed.POST("/conversations/:id/mark-read", conversationH.MarkRead)
	authed.POST("/conversations/:id/etiquettes/:etiquetteId", conversationH.AddEtiquette)
	authed.DELETE("/conversations/:id/etiquettes/:etiquetteId", conversationH.RemoveEtiquette)

	authed.GET("/inboxes", inboxH.List)
	authed.POST("/inboxes", inboxH.Create)
	authed.PATCH("/inboxes/:id", inboxH.Rename)
	authed.DELETE("/inboxes/:id", inboxH.Delete)

	authed.GET("/etiquettes", etiquetteH.List)
	authed.POST("/etiquettes", etiquetteH.Create)
	authed.PATCH("/etiquettes/:id", etiquetteH.Update)
	authed.DELETE("/etiquettes/:id", etiquetteH.Delete)

	authed.GET("/widget-settings", widgetH.Get)
	authed.PUT("/widget-settings", widgetH.Update)
}
