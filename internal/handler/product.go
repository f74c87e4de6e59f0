package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/product-pagination-service/internal/service"
	"github.com/maxviazov/product-pagination-service/pkg/response"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler { return &ProductHandler{svc: svc} }

func (h *ProductHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/products")
	{
		g.GET("/limit-offset", h.listOffset)
		g.GET("/cursor", h.listCursor)
	}
}

func (h *ProductHandler) listOffset(c *gin.Context) {
	var ferrs []service.FieldError
	limit, fe := intQuery(c, "limit")
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	offset, fe := intQuery(c, "offset")
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	page, err := h.svc.ListOffset(c.Request.Context(), service.OffsetQuery{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

func (h *ProductHandler) listCursor(c *gin.Context) {
	var ferrs []service.FieldError
	var cursor *int64
	if raw, ok := queryValue(c, "cursor"); ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ferrs = append(ferrs, service.FieldError{Field: "cursor", Message: "must be a valid integer"})
		} else {
			cursor = &v
		}
	}
	limit, fe := intQuery(c, "limit")
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	page, err := h.svc.ListCursor(c.Request.Context(), service.CursorQuery{Cursor: cursor, Limit: limit})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

// queryValue returns the trimmed query parameter; an empty value counts as absent.
func queryValue(c *gin.Context, name string) (string, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// intQuery parses an optional integer parameter. Range checks belong to the service.
func intQuery(c *gin.Context, name string) (*int, *service.FieldError) {
	raw, ok := queryValue(c, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &service.FieldError{Field: name, Message: "must be a valid integer"}
	}
	return &v, nil
}
