package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"webdev-order-api/config"
	"webdev-order-api/models"
	"webdev-order-api/services"
)

// transitionService wires the executor against the live database.
func transitionService() *services.TransitionService {
	return services.NewTransitionService(
		services.NewGormApplicationStore(config.DB),
		services.NewStatusChangeNotifier(config.DB),
	)
}

// currentActor builds the acting user from the auth middleware context.
func currentActor(c *gin.Context) (models.User, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return models.User{}, false
	}
	roleID, ok := c.Get("roleID")
	if !ok {
		return models.User{}, false
	}
	return models.User{UserID: userID.(int), RoleID: roleID.(int)}, true
}

// requestMetadataFrom extracts sanitized origin metadata from the request.
func requestMetadataFrom(c *gin.Context) services.RequestMetadata {
	return services.NewRequestMetadata(c.ClientIP(), c.Request.UserAgent())
}

func isAdmin(c *gin.Context) bool {
	roleID, ok := c.Get("roleID")
	return ok && roleID.(int) == models.RoleAdmin
}

func isStaff(c *gin.Context) bool {
	roleID, ok := c.Get("roleID")
	if !ok {
		return false
	}
	r := roleID.(int)
	return r == models.RoleManager || r == models.RoleAdmin
}

func paramInt(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
