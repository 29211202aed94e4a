package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RiegL/ostia-visitas-report/internal/handler"
	"github.com/RiegL/ostia-visitas-report/internal/model"
	appointmentsvc "github.com/RiegL/ostia-visitas-report/internal/service/appointment"
)

type Handler struct {
	service appointmentsvc.AppointmentService
}

func NewHandler(service appointmentsvc.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.ScheduleVisit)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.DELETE("/:id", h.CancelVisit)
	}
}

func (h *Handler) ScheduleVisit(c *gin.Context) {
	var req model.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.ScheduleVisit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

// ListAppointments serves the schedule views: ?date= for the day planner,
// ?patient_id=&minister_id= for the cancellation lookup.
func (h *Handler) ListAppointments(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		appointments, err := h.service.ListByDate(c.Request.Context(), date)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
		return
	}

	patientID := c.Query("patient_id")
	ministerID := c.Query("minister_id")
	if patientID == "" || ministerID == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date or patient_id and minister_id are required"))
		return
	}

	mid, err := strconv.ParseInt(ministerID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid minister ID"))
		return
	}

	appointments, err := h.service.FindByPatientAndMinister(c.Request.Context(), patientID, mid)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) CancelVisit(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.service.CancelVisit(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func appointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return 0, false
	}
	return id, true
}
