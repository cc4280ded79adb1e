package handler

import (
	"net/http"
	"strconv"
	"time"

	"fleetflow/internal/ifta"
	"fleetflow/internal/middleware"
	"fleetflow/internal/service"
	"fleetflow/pkg/pagination"
	"fleetflow/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IFTAHandler struct {
	iftaService service.IFTAService
	jwtSecret   []byte
	log         *zap.Logger
}

func NewIFTAHandler(iftaService service.IFTAService, jwtSecret []byte, log *zap.Logger) *IFTAHandler {
	return &IFTAHandler{iftaService: iftaService, jwtSecret: jwtSecret, log: log}
}

func (h *IFTAHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/tax/ifta")
	{
		group.GET("/jurisdictions", h.ListJurisdictions)
		group.GET("/jurisdictions/:code", h.GetJurisdiction)
		group.GET("/health", h.Health)
	}

	tenant := group.Group("", middleware.RequireTenant(), middleware.RequireTenantToken(h.jwtSecret))
	{
		tenant.POST("/fuel-purchase", h.RecordFuelPurchase)
		tenant.POST("/mileage", h.RecordMileage)
		tenant.POST("/validate-fuel", h.ValidateFuel)
		tenant.POST("/validate-mileage", h.ValidateMileage)
		tenant.GET("/fuel-purchases", h.ListFuelPurchases)
		tenant.GET("/mileage", h.ListMileage)
		tenant.POST("/generate-return", h.GenerateReturn)
		tenant.GET("/returns", h.ListReturns)
		tenant.GET("/returns/:year/:quarter", h.GetReturn)
		tenant.POST("/returns/:year/:quarter/file", h.FileReturn)
		tenant.GET("/compliance-status", h.ComplianceStatus)
		tenant.POST("/eld-sync", h.SyncELD)
	}
}

// RecordFuelPurchase validates and stores a fuel receipt
// @Summary      Record fuel purchase
// @Description  Validates a fuel purchase and appends it to the tenant's records. Every violated rule is reported.
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string                  true  "Tenant ID"
// @Param        request    body      ifta.FuelPurchaseInput  true  "Fuel purchase"
// @Success      200        {object}  response.Response{data=service.FuelPurchaseResponse}
// @Failure      400        {object}  response.Response
// @Router       /tax/ifta/fuel-purchase [post]
func (h *IFTAHandler) RecordFuelPurchase(c *gin.Context) {
	var req ifta.FuelPurchaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.iftaService.RecordFuelPurchase(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// RecordMileage validates and stores a mileage record
// @Summary      Record mileage
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string             true  "Tenant ID"
// @Param        request    body      ifta.MileageInput  true  "Mileage record"
// @Success      200        {object}  response.Response{data=service.MileageResponse}
// @Failure      400        {object}  response.Response
// @Router       /tax/ifta/mileage [post]
func (h *IFTAHandler) RecordMileage(c *gin.Context) {
	var req ifta.MileageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.iftaService.RecordMileage(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ValidateFuel checks a fuel purchase without storing it
// @Summary      Validate fuel purchase
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string                  true  "Tenant ID"
// @Param        request    body      ifta.FuelPurchaseInput  true  "Fuel purchase"
// @Success      200        {object}  response.Response{data=ifta.Result}
// @Router       /tax/ifta/validate-fuel [post]
func (h *IFTAHandler) ValidateFuel(c *gin.Context) {
	var req ifta.FuelPurchaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.iftaService.ValidateFuelPurchase(req)))
}

// ValidateMileage checks a mileage record without storing it
// @Summary      Validate mileage
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string             true  "Tenant ID"
// @Param        request    body      ifta.MileageInput  true  "Mileage record"
// @Success      200        {object}  response.Response{data=ifta.Result}
// @Router       /tax/ifta/validate-mileage [post]
func (h *IFTAHandler) ValidateMileage(c *gin.Context) {
	var req ifta.MileageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.iftaService.ValidateMileage(req)))
}

// ListFuelPurchases pages through the tenant's fuel purchases, newest first
// @Summary      List fuel purchases
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true   "Tenant ID"
// @Param        from       query     string  false  "First date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Items per page (default 20)"
// @Success      200        {object}  response.Response{data=pagination.Result}
// @Router       /tax/ifta/fuel-purchases [get]
func (h *IFTAHandler) ListFuelPurchases(c *gin.Context) {
	p := pagination.Parse(c)
	rows, total, err := h.iftaService.ListFuelPurchases(c.Request.Context(), middleware.TenantID(c), recordFilter(c, p))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Result(rows, total)))
}

// ListMileage pages through the tenant's mileage records, newest first
// @Summary      List mileage records
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true   "Tenant ID"
// @Param        from       query     string  false  "First date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Items per page (default 20)"
// @Success      200        {object}  response.Response{data=pagination.Result}
// @Router       /tax/ifta/mileage [get]
func (h *IFTAHandler) ListMileage(c *gin.Context) {
	p := pagination.Parse(c)
	rows, total, err := h.iftaService.ListMileage(c.Request.Context(), middleware.TenantID(c), recordFilter(c, p))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Result(rows, total)))
}

// GenerateReturn computes and stores the tenant's quarterly return
// @Summary      Generate quarterly return
// @Description  Recomputes the return from stored records. Regenerating a draft replaces it; a filed return cannot be regenerated.
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string                 true  "Tenant ID"
// @Param        request    body      service.PeriodRequest  true  "Year and quarter"
// @Success      200        {object}  response.Response{data=service.QuarterlyReturnResponse}
// @Failure      400        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /tax/ifta/generate-return [post]
func (h *IFTAHandler) GenerateReturn(c *gin.Context) {
	var req service.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.iftaService.GenerateReturn(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req.Year, req.Quarter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListReturns returns every stored return of the tenant, newest quarter first
// @Summary      List quarterly returns
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true  "Tenant ID"
// @Success      200        {object}  response.Response{data=[]service.QuarterlyReturnResponse}
// @Router       /tax/ifta/returns [get]
func (h *IFTAHandler) ListReturns(c *gin.Context) {
	res, err := h.iftaService.ListReturns(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// GetReturn fetches one stored return
// @Summary      Get quarterly return
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true  "Tenant ID"
// @Param        year       path      int     true  "Year"
// @Param        quarter    path      int     true  "Quarter (1-4)"
// @Success      200        {object}  response.Response{data=service.QuarterlyReturnResponse}
// @Failure      404        {object}  response.Response
// @Router       /tax/ifta/returns/{year}/{quarter} [get]
func (h *IFTAHandler) GetReturn(c *gin.Context) {
	year, quarter, ok := periodParams(c)
	if !ok {
		return
	}

	res, err := h.iftaService.GetReturn(c.Request.Context(), middleware.TenantID(c), year, quarter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// FileReturn marks a stored return as filed
// @Summary      File quarterly return
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true  "Tenant ID"
// @Param        year       path      int     true  "Year"
// @Param        quarter    path      int     true  "Quarter (1-4)"
// @Success      200        {object}  response.Response{data=service.QuarterlyReturnResponse}
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /tax/ifta/returns/{year}/{quarter}/file [post]
func (h *IFTAHandler) FileReturn(c *gin.Context) {
	year, quarter, ok := periodParams(c)
	if !ok {
		return
	}

	res, err := h.iftaService.FileReturn(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), year, quarter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ComplianceStatus reports upcoming deadlines and overdue returns
// @Summary      Compliance status
// @Tags         ifta
// @Produce      json
// @Param        tenant-id  header    string  true   "Tenant ID"
// @Param        as_of      query     string  false  "Reference date (YYYY-MM-DD), default today"
// @Success      200        {object}  response.Response{data=service.ComplianceStatusResponse}
// @Failure      400        {object}  response.Response
// @Router       /tax/ifta/compliance-status [get]
func (h *IFTAHandler) ComplianceStatus(c *gin.Context) {
	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		d, err := ifta.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Invalid(http.StatusBadRequest, []string{"as_of must be a valid date (YYYY-MM-DD)"}))
			return
		}
		asOf = d
	}

	res, err := h.iftaService.ComplianceStatus(c.Request.Context(), middleware.TenantID(c), asOf)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// SyncELD imports a quarter of mileage from the ELD vendor
// @Summary      Sync ELD mileage
// @Tags         ifta
// @Accept       json
// @Produce      json
// @Param        tenant-id  header    string                 true  "Tenant ID"
// @Param        request    body      service.PeriodRequest  true  "Year and quarter"
// @Success      200        {object}  response.Response{data=service.SyncReport}
// @Failure      502        {object}  response.Response
// @Failure      503        {object}  response.Response
// @Router       /tax/ifta/eld-sync [post]
func (h *IFTAHandler) SyncELD(c *gin.Context) {
	var req service.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.iftaService.SyncELDMileage(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req.Year, req.Quarter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListJurisdictions returns the jurisdiction registry
// @Summary      List IFTA jurisdictions
// @Tags         ifta
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.JurisdictionResponse}
// @Router       /tax/ifta/jurisdictions [get]
func (h *IFTAHandler) ListJurisdictions(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.iftaService.Jurisdictions()))
}

// GetJurisdiction returns one jurisdiction
// @Summary      Get IFTA jurisdiction
// @Tags         ifta
// @Produce      json
// @Param        code  path      string  true  "Two-letter jurisdiction code"
// @Success      200   {object}  response.Response{data=service.JurisdictionResponse}
// @Failure      404   {object}  response.Response
// @Router       /tax/ifta/jurisdictions/{code} [get]
func (h *IFTAHandler) GetJurisdiction(c *gin.Context) {
	res, err := h.iftaService.Jurisdiction(c.Param("code"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// Health echoes the service configuration
// @Summary      IFTA service health
// @Tags         ifta
// @Produce      json
// @Success      200  {object}  response.Response{data=service.HealthResponse}
// @Router       /tax/ifta/health [get]
func (h *IFTAHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.iftaService.Health()))
}

func recordFilter(c *gin.Context, p pagination.Params) service.RecordFilter {
	return service.RecordFilter{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Page:  p.Page,
		Limit: p.Limit,
	}
}

func periodParams(c *gin.Context) (int, int, bool) {
	year, yearErr := strconv.Atoi(c.Param("year"))
	quarter, quarterErr := strconv.Atoi(c.Param("quarter"))
	if yearErr != nil || quarterErr != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "year and quarter must be integers"))
		return 0, 0, false
	}
	return year, quarter, true
}
