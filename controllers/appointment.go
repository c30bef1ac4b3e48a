package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/priyanshsaraf/serenity-booking/db"
	"github.com/priyanshsaraf/serenity-booking/models"
	"github.com/priyanshsaraf/serenity-booking/redis"
	"github.com/priyanshsaraf/serenity-booking/scheduling"
	"github.com/priyanshsaraf/serenity-booking/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingConfig is the studio schedule every booking handler validates
// against. Tests swap in their own config and clock.
var (
	BookingConfig = scheduling.DefaultConfig()
	nowFunc       = time.Now
)

const dateLayout = "2006-01-02"

type appointmentInput struct {
	Service   string `json:"service"`
	Date      string `json:"date"`       // "2006-01-02"
	StartTime string `json:"start_time"` // "15:04" in 24h
	Notes     string `json:"notes"`
}

func parseCandidate(input appointmentInput) (scheduling.Candidate, error) {
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return scheduling.Candidate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input.Date)
	}
	start, err := scheduling.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return scheduling.Candidate{}, err
	}
	return scheduling.Candidate{Date: date, Start: start, Service: input.Service}, nil
}

// dayLockKey derives a stable 64-bit advisory lock key from a calendar
// date. Time of day never enters the key.
func dayLockKey(date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte("appointments:" + date.Format(dateLayout)))
	return int64(h.Sum64())
}

// lockDay takes a transaction-scoped advisory lock on the date, so only one
// booking transaction validates and inserts for that day at a time. Row
// locks alone cannot do this: the first booking of a day finds no rows to
// lock, and two such inserts would slip past each other.
func lockDay(tx *gorm.DB, date time.Time) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", dayLockKey(date)).Error
}

// dayIntervals loads the booked intervals on a date, optionally excluding
// one appointment (for edits) and optionally locking the rows so a
// concurrent booking for the same day waits until this transaction commits.
func dayIntervals(tx *gorm.DB, date time.Time, excludeID uint, lock bool) ([]scheduling.Interval, error) {
	q := tx.Where("date = ?", date.Format(dateLayout))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(appointments))
	for i := range appointments {
		iv, err := appointments[i].Interval()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, scheduling.ErrClosedDay) ||
		errors.Is(err, scheduling.ErrOutsideBusinessHours) ||
		errors.Is(err, scheduling.ErrOverlap) ||
		errors.Is(err, scheduling.ErrInsufficientLeadTime)
}

// validationResponse maps a scheduling error to the single user-facing
// message shown for the failed request.
func validationResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnprocessableEntity
	var message string
	switch {
	case errors.Is(err, scheduling.ErrClosedDay):
		message = "Our business is only open Monday - Friday from 9:00 AM to 5:00 PM."
	case errors.Is(err, scheduling.ErrOutsideBusinessHours):
		message = "Appointments must be scheduled during business hours (9:00 AM to 5:00 PM)."
	case errors.Is(err, scheduling.ErrOverlap):
		status = fiber.StatusConflict
		message = "This appointment overlaps with an existing appointment. Please choose a different time."
	case errors.Is(err, scheduling.ErrInsufficientLeadTime):
		message = "Appointments must be booked at least 24 hours in advance."
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to validate appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// parseExcludeID reads an optional appointment ID query value. Malformed or
// out-of-range input is ignored, same as no exclusion. Parsed at 32 bits so
// the value always fits a uint ID, 32-bit platforms included.
func parseExcludeID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func catalogServices() []string {
	names := make([]string, 0, len(BookingConfig.ServiceMinutes))
	for name := range BookingConfig.ServiceMinutes {
		names = append(names, name)
	}
	return names
}

// GetMyAppointments lists the caller's appointments, soonest first.
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.Where("client_id = ?", userID).
		Order("date, start_time").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one of the caller's appointments by ID.
func GetAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND client_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a new slot for the caller. Validation and insert
// run in one transaction holding the day's advisory lock, so two concurrent
// requests cannot both take the same slot.
func CreateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input appointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	cand, err := parseCandidate(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date or time format",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockDay(tx, cand.Date); err != nil {
			return err
		}
		existing, err := dayIntervals(tx, cand.Date, 0, true)
		if err != nil {
			return err
		}
		end, err := BookingConfig.Validate(cand, existing, nowFunc())
		if err != nil {
			return err
		}
		appointment = models.Appointment{
			Service:   input.Service,
			Date:      cand.Date,
			StartTime: cand.Start.String(),
			EndTime:   end.String(),
			Notes:     input.Notes,
			ClientID:  userID,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if isValidationError(err) {
			return validationResponse(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(input.Date, catalogServices())
	sendConfirmationEmail(&appointment)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment reschedules one of the caller's appointments. The end
// time is rederived and the slot re-validated against every other
// appointment on the new date.
func UpdateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND client_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	oldDate := appointment.Date.Format(dateLayout)

	var input appointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	cand, err := parseCandidate(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date or time format",
			Error:   err.Error(),
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockDay(tx, cand.Date); err != nil {
			return err
		}
		// Exclude this appointment's own row so keeping the same time
		// does not collide with itself.
		existing, err := dayIntervals(tx, cand.Date, appointment.ID, true)
		if err != nil {
			return err
		}
		end, err := BookingConfig.Validate(cand, existing, nowFunc())
		if err != nil {
			return err
		}
		appointment.Service = input.Service
		appointment.Date = cand.Date
		appointment.StartTime = cand.Start.String()
		appointment.EndTime = end.String()
		appointment.Notes = input.Notes
		return tx.Save(&appointment).Error
	})
	if err != nil {
		if isValidationError(err) {
			return validationResponse(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(oldDate, catalogServices())
	if input.Date != oldDate {
		redis.InvalidateSlots(input.Date, catalogServices())
	}

	return c.JSON(appointment)
}

// DeleteAppointment removes one of the caller's appointments.
func DeleteAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND client_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(appointment.Date.Format(dateLayout), catalogServices())

	return c.SendStatus(fiber.StatusNoContent)
}

// GetAvailableTimes lists the free start times for a date and service.
// This is advisory UI data: missing params, an unparseable date or a
// closed weekday all degrade to an empty list, never an error.
func GetAvailableTimes(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	service := c.Query("service")

	empty := fiber.Map{"times": []scheduling.Slot{}}
	if dateStr == "" || service == "" {
		return c.JSON(empty)
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return c.JSON(empty)
	}
	if !BookingConfig.IsOpenOn(date.Weekday()) {
		return c.JSON(empty)
	}

	excludeID := parseExcludeID(c.Query("exclude_id"))

	_, knownService := BookingConfig.ServiceMinutes[service]
	cacheable := excludeID == 0 && knownService
	if cacheable {
		if payload, ok := redis.GetCachedSlots(dateStr, service); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(payload)
		}
	}

	existing, err := dayIntervals(db.DB, date, excludeID, false)
	if err != nil {
		log.Printf("Failed to load appointments for %s: %v", dateStr, err)
		return c.JSON(empty)
	}

	response := fiber.Map{"times": BookingConfig.FreeSlots(service, existing)}

	if cacheable {
		if payload, err := json.Marshal(response); err == nil {
			redis.CacheSlots(dateStr, service, string(payload))
		}
	}

	return c.JSON(response)
}

// sendConfirmationEmail mails the client after a successful booking.
// Best effort: a mail failure never fails the booking.
func sendConfirmationEmail(appointment *models.Appointment) {
	var client models.User
	if err := db.DB.First(&client, appointment.ClientID).Error; err != nil {
		log.Printf("Failed to load client %d for confirmation email: %v", appointment.ClientID, err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been scheduled.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Thank you for choosing our studio!</p>
		<p>Best regards,</p>
		<p>Serenity Booking</p>
	`, client.Name, appointment.Service,
		appointment.Date.Format(dateLayout),
		appointment.StartTime, appointment.EndTime)

	if err := utils.SendEmail(client.Email, "Appointment Confirmation", body); err != nil {
		log.Printf("Failed to send confirmation email for appointment %d: %v", appointment.ID, err)
	}
}
