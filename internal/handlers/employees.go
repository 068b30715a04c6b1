package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuroy/rover-security-api/internal/models"
	"github.com/priyanshuroy/rover-security-api/internal/store"
)

// RegisterEmployeeRoutes registers the directory CRUD endpoints.
//
// GET    /api/employees      — full directory, ordered by name
// POST   /api/employees      — create; employee_id and name are required
// PUT    /api/employees/:id  — partial update by internal id
// DELETE /api/employees/:id  — remove by internal id
func RegisterEmployeeRoutes(r gin.IRoutes, st store.Store) {
	r.GET("/api/employees", func(c *gin.Context) {
		employees, err := st.ListEmployees(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employees"})
			return
		}
		c.JSON(http.StatusOK, employees)
	})

	r.POST("/api/employees", func(c *gin.Context) {
		var req models.EmployeeCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Required fields per contract.
		if req.EmployeeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		id, err := st.CreateEmployee(c.Request.Context(), models.Employee{
			EmployeeID: req.EmployeeID,
			Name:       req.Name,
			Position:   req.Position,
			Department: req.Department,
			Phone:      req.Phone,
			Email:      req.Email,
			FaceImage:  req.FaceImage,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmployeeID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
	})

	r.PUT("/api/employees/:id", func(c *gin.Context) {
		id, ok := employeeID(c)
		if !ok {
			return
		}

		var upd models.EmployeeUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if err := st.UpdateEmployee(c.Request.Context(), id, upd); err != nil {
			switch {
			case errors.Is(err, store.ErrEmployeeNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			case errors.Is(err, store.ErrDuplicateEmployeeID):
				c.JSON(http.StatusConflict, gin.H{"error": "employee_id already exists"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update employee"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	})

	r.DELETE("/api/employees/:id", func(c *gin.Context) {
		id, ok := employeeID(c)
		if !ok {
			return
		}

		if err := st.DeleteEmployee(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrEmployeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	})
}

// employeeID parses the :id path parameter, writing a 400 on failure.
func employeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
