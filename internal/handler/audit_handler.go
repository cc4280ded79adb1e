package handler

import (
	"net/http"

	"fleetflow/internal/middleware"
	"fleetflow/internal/service"
	"fleetflow/pkg/pagination"
	"fleetflow/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditService service.AuditService
	jwtSecret    []byte
	log          *zap.Logger
}

func NewAuditHandler(auditService service.AuditService, jwtSecret []byte, log *zap.Logger) *AuditHandler {
	return &AuditHandler{auditService: auditService, jwtSecret: jwtSecret, log: log}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/tax/ifta/audit-logs")
	group.Use(middleware.RequireTenant(), middleware.RequireTenantToken(h.jwtSecret))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs pages through the tenant's audit trail
// @Summary      Get audit logs
// @Description  Lists record appends, return generations, filings and ELD syncs of the tenant, newest first
// @Tags         audit
// @Produce      json
// @Param        tenant-id  header    string  true   "Tenant ID"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20)"
// @Success      200        {object}  response.Response{data=pagination.Result}
// @Router       /tax/ifta/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), middleware.TenantID(c), p.Page, p.Limit)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Result(logs, total)))
}
