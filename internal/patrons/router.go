package patrons

import "github.com/gin-gonic/gin"

func SetupPatronRoutes(rg *gin.RouterGroup, controller Controller) {
	patrons := rg.Group("/patrons")
	{
		patrons.GET("", controller.ListPatrons)
		patrons.POST("", controller.CreatePatron)
		patrons.GET("/:id", controller.GetPatron)
		patrons.PUT("/:id", controller.UpdatePatron)
		patrons.DELETE("/:id", controller.DeletePatron)
	}
}
