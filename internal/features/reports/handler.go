package reports

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saferoute/saferoute-api/internal/pkg/response"
	errs "github.com/saferoute/saferoute-api/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_FAILED")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		response.ValidationError(c, ve.Error(), "VALIDATION_FAILED")
		return
	}
	switch {
	case errors.Is(err, errs.ErrRejectedContent):
		response.BadRequest(c, "Comments do not appear to describe the selected incident category", "CONTENT_REJECTED")
	case errors.Is(err, errs.ErrNotFound):
		response.NotFound(c, "Report not found", "NOT_FOUND")
	default:
		response.InternalServerError(c, "Something went wrong", "INTERNAL_ERROR")
	}
}

// @Summary Submit an incident report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report details"
// @Success 201 {object} response.SuccessResponse
// @Router /reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	reporterID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.service.Submit(c.Request.Context(), reporterID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, report.View())
}

// @Summary Query area safety
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param lng query number true "Center longitude"
// @Param lat query number true "Center latitude"
// @Param radius query number true "Radius in meters"
// @Param includeMetrics query bool false "Attach the security assessment"
// @Success 200 {object} response.SuccessResponse
// @Router /reports/area [get]
func (h *Handler) GetAreaSafety(c *gin.Context) {
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lng parameter", "INVALID_QUERY")
		return
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter", "INVALID_QUERY")
		return
	}
	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid radius parameter", "INVALID_QUERY")
		return
	}
	includeMetrics, _ := strconv.ParseBool(c.DefaultQuery("includeMetrics", "false"))

	query := &AreaQuery{
		Longitude:      lng,
		Latitude:       lat,
		RadiusMeters:   radius,
		IncludeMetrics: includeMetrics,
	}

	result, err := h.service.AreaSafety(c.Request.Context(), query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// @Summary Vote on a report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body VoteRequest true "Vote direction"
// @Success 200 {object} response.SuccessResponse
// @Router /reports/{id}/vote [post]
func (h *Handler) CastVote(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID", "INVALID_ID")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	voterID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.service.Vote(c.Request.Context(), reportID, voterID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, gin.H{"id": report.ID, "score": report.Votes.Score})
}

// @Summary List the caller's reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /reports/me [get]
func (h *Handler) GetMyReports(c *gin.Context) {
	reporterID, ok := currentUserID(c)
	if !ok {
		return
	}

	found, err := h.service.ByReporter(c.Request.Context(), reporterID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, found)
}

// @Summary List all reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	found, err := h.service.All(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, found)
}
