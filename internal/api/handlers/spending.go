package handlers

import (
	"net/http"

	"sequential-monitor/internal/api/models"
	"sequential-monitor/internal/spending"

	"github.com/gin-gonic/gin"
)

// ListSpendingFunctions handles GET /api/v1/spending-functions
func ListSpendingFunctions(c *gin.Context) {
	catalog := spending.Catalog()
	out := make([]models.SpendingFunctionInfo, len(catalog))
	for i, info := range catalog {
		out[i] = models.SpendingFunctionInfo{
			Name:            info.Name,
			Description:     info.Description,
			InflationFactor: info.InflationFactor,
		}
	}
	c.JSON(http.StatusOK, gin.H{"spending_functions": out})
}
