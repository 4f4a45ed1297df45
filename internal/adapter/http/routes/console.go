package routes

import (
	"rental_console/internal/adapter/http/handlers"
	"rental_console/internal/adapter/http/middleware"
	"rental_console/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathTeamMembers  = "/team-members"
	PathClients      = "/clients"
	PathProducts     = "/products"
	PathQuotations   = "/quotations"
	PathOrders       = "/orders"
	PathPayments     = "/payments"
	PathTerms        = "/terms"
	PathInvoiceNames = "/invoice-names"
)

func addAuthRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Session.Login)
		auth.POST("/logout", h.Session.Logout)
		auth.GET("/me", middleware.RequireSession(h.Auth), h.Session.Me)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, h *handlers.TeamMemberHandler) {
	team := rg.Group(PathTeamMembers, middleware.RequirePermission(entities.PermissionUsers))
	{
		team.GET("", h.List)
		team.POST("", h.Create)
		team.PUT("/:id", h.Update)
		team.DELETE("/:id", h.Delete)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients, middleware.RequirePermission(entities.PermissionClients))
	{
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
		clients.POST("", h.Create)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
		clients.PATCH("/:id/toggle-active", h.ToggleActive)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts, middleware.RequirePermission(entities.PermissionProducts))
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations, middleware.RequirePermission(entities.PermissionQuotations))
	{
		quotations.GET("", h.List)
		quotations.GET("/:id", h.Get)
		quotations.POST("", h.Create)
		quotations.PUT("/:id", h.Update)
		quotations.PATCH("/:id/dates", h.EditDates)
		quotations.PATCH("/:id/line-items/:lineKey", h.EditLineItem)
		quotations.DELETE("/:id/line-items/:lineKey", h.DeleteLineItem)
		quotations.POST("/:id/cancel", h.Cancel)
		quotations.POST("/:id/generate-order", h.GenerateOrder)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, payments *handlers.PaymentHandler, documents *handlers.DocumentHandler) {
	orders := rg.Group(PathOrders, middleware.RequirePermission(entities.PermissionOrders))
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.POST("", h.Create)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.PATCH("/:id/dates", h.EditDates)
		orders.PATCH("/:id/line-items/:lineKey", h.EditLineItem)
		orders.DELETE("/:id/line-items/:lineKey", h.DeleteLineItem)
		orders.POST("/:id/cancel", h.Cancel)
		orders.POST("/:id/complete", h.Complete)
		orders.PUT("/:id/invoice-no", h.AssignInvoiceNo)
		orders.PUT("/:id/challan-no", h.AssignChallanNo)
		orders.GET("/:id/invoice.pdf", documents.Invoice)
		orders.GET("/:id/challan.pdf", documents.Challan)
		orders.GET("/:id/payments", payments.ListForOrder)
		orders.POST("/:id/payments", payments.Record)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments, middleware.RequirePermission(entities.PermissionPayments))
	{
		payments.GET("", h.List)
		payments.GET("/pending", h.Pending)
		payments.GET("/export.xlsx", h.Export)
		payments.PUT("/:id", h.Update)
	}
}

func addTermsRoutes(rg *gin.RouterGroup, h *handlers.TermsHandler) {
	terms := rg.Group(PathTerms, middleware.RequirePermission(entities.PermissionTerms))
	{
		terms.GET("", h.List)
		terms.GET("/client/:clientId", h.ForClient)
		terms.POST("", h.Create)
		terms.PUT("/:id", h.Update)
		terms.DELETE("/:id", h.Delete)
	}

	names := rg.Group(PathInvoiceNames, middleware.RequirePermission(entities.PermissionTerms))
	{
		names.GET("", h.ListInvoiceNames)
		names.PUT("/:id", h.RenameInvoiceName)
	}
}
