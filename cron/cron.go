package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/priyanshsaraf/serenity-booking/db"
	"github.com/priyanshsaraf/serenity-booking/models"
	"github.com/priyanshsaraf/serenity-booking/redis"
	"github.com/priyanshsaraf/serenity-booking/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// reminderWindow returns the date and start-time bounds for appointments
// due a reminder about an hour from now. ok is false when the window would
// straddle midnight, where nothing can start anyway.
func reminderWindow(now time.Time) (date, from, to string, ok bool) {
	start := now.Add(55 * time.Minute)
	end := now.Add(65 * time.Minute)
	if start.Day() != end.Day() {
		return "", "", "", false
	}
	return start.Format("2006-01-02"), start.Format("15:04"), end.Format("15:04"), true
}

// sendAppointmentReminders mails clients whose appointment starts in about
// an hour. The reminder_sent column keeps each appointment to one mail
// across restarts; Redis additionally short-circuits racing ticks.
func sendAppointmentReminders() {
	date, from, to, ok := reminderWindow(time.Now())
	if !ok {
		return
	}

	var appointments []models.Appointment
	err := db.DB.Preload("Client").
		Where("date = ? AND start_time BETWEEN ? AND ? AND reminder_sent = ?",
			date, from, to, false).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Client == nil {
			log.Printf("Appointment %d has no client loaded, skipping reminder", appointment.ID)
			continue
		}
		if !redis.MarkReminderSent(appointment.ID) {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		if err := db.DB.Model(&appointment).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for appointment %d: %v", appointment.ID, err)
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Serenity Booking</p>
	`, appointment.Client.Name, appointment.Service,
		appointment.Date.Format("2006-01-02"),
		appointment.StartTime, appointment.EndTime)

	return utils.SendEmail(appointment.Client.Email, subject, body)
}
