package api

import (
	"errors"
	"net/http"

	reqdto "resto-booking/internal/handler/dto/request"
	resdto "resto-booking/internal/handler/dto/response"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/usecase/commands"
	"resto-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TableHandler struct {
	tableCommands commands.TableCommands
	tableQueries  queries.TableQueries
}

func NewTableHandler(tableCommands commands.TableCommands, tableQueries queries.TableQueries) *TableHandler {
	return &TableHandler{
		tableCommands: tableCommands,
		tableQueries:  tableQueries,
	}
}

// @Summary Create table
// @Description Register a new table for a restaurant
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTableRequest true "Table request"
// @Success 201 {object} resdto.TableResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req reqdto.CreateTableRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tableCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTableView(view))
}

// @Summary Update table
// @Description Change the seat count or settable status of a table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body reqdto.UpdateTableRequest true "Table patch"
// @Success 200 {object} resdto.TableResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tables/{id} [patch]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return
	}

	var req reqdto.UpdateTableRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tableCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Table not found",
			})
		case errors.Is(err, errs.ErrTableConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table is occupied",
			})
		case errors.Is(err, errs.ErrInvalidTableStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid table status",
			})
		case errors.Is(err, errs.ErrInvalidSeats):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid seat count",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No fields to update",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableView(view))
}

// @Summary List restaurant tables
// @Description List every table registered for a restaurant
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.TableResponse
// @Router /restaurants/{id}/tables [get]
func (h *TableHandler) ListRestaurantTables(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Restaurant ID required",
		})
		return
	}

	views, err := h.tableQueries.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableViews(views))
}
