package boot

import (
	"log"

	"umrahdesk/src/db"
	"umrahdesk/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Hotel{},
		&models.Package{},
		&models.HotelBooking{},
		&models.PackageBooking{},
		&models.CustomUmrahRequest{},
		&models.FormOption{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
