package customerControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/models"
)

type customerInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /admin/customers
func GetCustomers(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customers []models.Customer
		err := store.GetOrCompute(c.Request.Context(), "customers:list", []string{cache.TagCustomers}, &customers, func() (interface{}, error) {
			var rows []models.Customer
			err := db.Order("customer_id DESC").Find(&rows).Error
			return rows, err
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GET /admin/customers/:customer_id
func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, "customer_id = ?", customerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// POST /admin/customers
func CreateCustomer(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input customerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer := models.Customer{Name: input.Name}
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		store.Invalidate(c.Request.Context(), cache.TagCustomers)
		c.JSON(http.StatusCreated, customer)
	}
}

// PUT /admin/customers/:customer_id
func RenameCustomer(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}

		var input customerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.Customer{}).
			Where("customer_id = ?", customerID).
			Update("name", input.Name)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		store.Invalidate(c.Request.Context(), cache.TagCustomers)
		c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
	}
}

// DELETE /admin/customers/:customer_id
func DeleteCustomer(db *gorm.DB, store cache.TagCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}

		result := db.Where("customer_id = ?", customerID).Delete(&models.Customer{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		store.Invalidate(c.Request.Context(), cache.TagCustomers)
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
	}
}
