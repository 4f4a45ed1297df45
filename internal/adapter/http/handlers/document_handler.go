package handlers

import (
	"context"
	"fmt"
	"net/http"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const documentTag = "[document][handler]"

// DocumentHandler serves rendered invoices and delivery challans. The
// archive location, when a copy was stored, is sent in X-Archive-URL.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	logger  logrus.FieldLogger
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, logger logrus.FieldLogger) *DocumentHandler {
	return &DocumentHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

func (h *DocumentHandler) Invoice(c *gin.Context) {
	h.serve(c, h.usecase.Invoice)
}

func (h *DocumentHandler) Challan(c *gin.Context) {
	h.serve(c, h.usecase.Challan)
}

func (h *DocumentHandler) serve(c *gin.Context, render func(ctx context.Context, orderID string) (usecase.Document, error)) {
	doc, err := render(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, documentTag, mapDomainError(err))
		return
	}
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	if doc.ArchiveURL != "" {
		c.Header("X-Archive-URL", doc.ArchiveURL)
	}
	disposition := "inline"
	if c.Query("download") == "true" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, doc.Name))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
