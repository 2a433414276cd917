package controllers

import (
	"net/http"

	"github.com/Bamimore2000/borokini/app/services"
	"github.com/Bamimore2000/borokini/pkg/response"
)

// DashboardController serves the admin overview.
type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{dashboard: services.NewDashboardService()}
}

// Show returns revenue, counts, ratios, recent orders and low-stock products.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := c.dashboard.Stats()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, stats)
}
