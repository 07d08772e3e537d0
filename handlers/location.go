package handlers

import (
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/middleware"

	"github.com/gin-gonic/gin"
)

// GetLocation answers with the "City, Country" placeholder resolved by
// middleware.GeolocationMiddleware. Clients may retry on 503.
func GetLocation(c *gin.Context) {
	if v, ok := c.Get("geoLocation"); ok {
		if geo, ok := v.(*middleware.GeoLocation); ok && geo.Country != "" {
			c.JSON(http.StatusOK, gin.H{"location": geo.Label(), "city": geo.City, "country": geo.Country})
			return
		}
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"message": "location unavailable", "retry": true})
}
