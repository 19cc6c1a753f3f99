package main

import (
	"log"
	"os"
	"time"

	"umrahdesk/src/boot"
	"umrahdesk/src/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

// traveldate accepts a plain date or RFC3339 timestamp that is not in
// the past.
var travelDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	var datetime time.Time
	var err error
	for _, layout := range []string{time.RFC3339, config.DATE_PARSE_FORMAT} {
		if datetime, err = time.Parse(layout, date); err == nil {
			break
		}
	}
	if err != nil {
		return false
	}
	return !datetime.Before(time.Now().Truncate(24 * time.Hour))
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("traveldate", travelDateValidatorFunc); err != nil {
			log.Printf("Could not register traveldate validator: %s\n", err.Error())
		}
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("WEB_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	public := r.Group(apiPrefix)
	bookingHandlers(public)
	hotelHandlers(public)
	packageHandlers(public)
	optionHandlers(public)

	admin := r.Group(apiPrefix + "/admin")
	adminBookingHandlers(admin)
	adminHotelHandlers(admin)
	adminPackageHandlers(admin)
	adminOptionHandlers(admin)
	invoiceHandlers(admin)

	return r
}

func main() {
	registerValidators()
	boot.InitDb()

	r := newRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server exited: %s", err.Error())
	}
}
