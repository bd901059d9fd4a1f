package utils

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeTrialScheduler sets up the trial expiry reminder scheduler
func InitializeTrialScheduler() {
	log.Println("[TRIAL-SCHEDULER] Initializing trial reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM to warn students whose trial is about to lapse
	c.AddFunc("0 8 * * *", func() {
		log.Println("[TRIAL-SCHEDULER] Running daily trial expiry check...")
		ProcessExpiringTrials()
	})

	c.Start()
	log.Println("[TRIAL-SCHEDULER] Trial reminder scheduler started - runs daily at 8 AM")
}

// ProcessExpiringTrials sends reminder emails for trials expiring within 2 days.
// Access gating itself stays read-time; this only flags the reminder as sent.
func ProcessExpiringTrials() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiring []courseModels.Enrollment
	if err := db.
		Where("type = ? AND reminder_sent = ? AND expiry_date IS NOT NULL", courseModels.EnrollmentTrial, false).
		Where("expiry_date BETWEEN ? AND ?", now, twoDaysFromNow).
		Find(&expiring).Error; err != nil {
		log.Printf("[TRIAL-SCHEDULER] Error fetching expiring trials: %v", err)
		return
	}

	log.Printf("[TRIAL-SCHEDULER] Found %d trials expiring soon", len(expiring))

	for _, enrollment := range expiring {
		var user models.User
		if err := db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
			log.Printf("[TRIAL-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		var course courseModels.Course
		if err := db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			log.Printf("[TRIAL-SCHEDULER] Error fetching course %d: %v", enrollment.CourseID, err)
			continue
		}

		SendTrialReminderEmail(user.Email, user.Name, course.Title, *enrollment.ExpiryDate)

		enrollment.ReminderSent = true
		if err := db.Save(&enrollment).Error; err != nil {
			log.Printf("[TRIAL-SCHEDULER] Error marking reminder sent for enrollment %d: %v", enrollment.ID, err)
		}
	}
}
