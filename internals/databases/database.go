// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	attendanceModel "campushub_backend/internals/features/attendance/sessions/model"
	calendarModel "campushub_backend/internals/features/events/calendar/model"
	classroomModel "campushub_backend/internals/features/academics/classrooms/model"
	codeModel "campushub_backend/internals/features/registration/codes/model"
	facultyModel "campushub_backend/internals/features/academics/faculty/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	subjectModel "campushub_backend/internals/features/academics/subjects/model"
	timetableModel "campushub_backend/internals/features/timetable/templates/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	// Full DSN with statement_timeout. With PgBouncer switch host/port to the
	// pooler and keep PreferSimpleProtocol=true (transaction pooling).
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=campushub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate keeps the schema in sync with the feature models.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&subjectModel.SubjectModel{},
		&facultyModel.FacultyModel{},
		&classroomModel.ClassroomModel{},
		&studentModel.StudentModel{},
		&timetableModel.TimetableTemplateModel{},
		&attendanceModel.AttendanceSessionModel{},
		&attendanceModel.AttendanceRecordModel{},
		&codeModel.RegistrationCodeModel{},
		&calendarModel.CalendarEventModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}
	log.Println("[INFO] automigrate done.")
}

func WarmUpQueries() {
	// light queries so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
