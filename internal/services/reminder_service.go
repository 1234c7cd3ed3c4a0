package services

import (
	"fmt"
	"time"

	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"
)

// ReminderService derives the reminder views from the service history:
// each record's next-due date is joined with its vehicle and client and
// bucketed by how soon it falls due.
type ReminderService struct {
	Services *repositories.ServiceRecordRepository
	Vehicles *repositories.VehicleRepository
	Clients  *repositories.ClientRepository

	SoonWindowDays  int
	LaterWindowDays int
}

func NewReminderService(
	services *repositories.ServiceRecordRepository,
	vehicles *repositories.VehicleRepository,
	clients *repositories.ClientRepository,
	soonWindowDays, laterWindowDays int,
) *ReminderService {
	if soonWindowDays <= 0 {
		soonWindowDays = 15
	}
	if laterWindowDays <= 0 {
		laterWindowDays = 60
	}
	return &ReminderService{
		Services:        services,
		Vehicles:        vehicles,
		Clients:         clients,
		SoonWindowDays:  soonWindowDays,
		LaterWindowDays: laterWindowDays,
	}
}

// CreateRecord parses and stores a new service record
func (s *ReminderService) CreateRecord(req *models.CreateServiceRecordRequest) (*models.ServiceRecord, error) {
	if _, err := s.Vehicles.GetByID(req.VehicleID); err != nil {
		return nil, err
	}
	serviceDate, err := time.ParseInLocation(timeutil.DateLayout, req.Date, timeutil.IST)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service date %q", ErrInvalidInput, req.Date)
	}
	nextDue, err := time.ParseInLocation(timeutil.DateLayout, req.NextDue, timeutil.IST)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid next due date %q", ErrInvalidInput, req.NextDue)
	}
	status := req.Status
	if status == "" {
		status = models.ServiceScheduled
	}
	return s.Services.Create(models.ServiceRecord{
		VehicleID: req.VehicleID,
		Type:      req.Type,
		Date:      serviceDate,
		NextDue:   nextDue,
		Status:    status,
		Cost:      req.Cost,
		Documents: req.Documents,
	})
}

func (s *ReminderService) ListRecords(vehicleID int) ([]*models.ServiceRecord, error) {
	if vehicleID > 0 {
		return s.Services.ListByVehicle(vehicleID)
	}
	return s.Services.List()
}

// ListReminders returns the joined reminder view filtered by window.
// Windows match the dashboard tabs: all, due within the soon window (15
// days), due within the later window (60 days), or already overdue.
func (s *ReminderService) ListReminders(window models.ReminderWindow) ([]*models.Reminder, error) {
	return s.listRemindersAt(timeutil.Now(), window)
}

func (s *ReminderService) listRemindersAt(now time.Time, window models.ReminderWindow) ([]*models.Reminder, error) {
	records, err := s.Services.List()
	if err != nil {
		return nil, err
	}

	reminders := make([]*models.Reminder, 0, len(records))
	for _, record := range records {
		days := timeutil.DaysBetween(now, record.NextDue)
		if !inWindow(window, days, s.SoonWindowDays, s.LaterWindowDays) {
			continue
		}
		reminder := &models.Reminder{ServiceRecord: *record, DaysUntilDue: days}
		if vehicle, err := s.Vehicles.GetByID(record.VehicleID); err == nil {
			reminder.VehicleModel = vehicle.Model
			reminder.VehiclePlate = vehicle.Plate
			if client, err := s.Clients.GetByID(vehicle.ClientID); err == nil {
				reminder.ClientName = client.Name
				reminder.ClientPhone = client.Phone
			}
		}
		reminders = append(reminders, reminder)
	}
	return reminders, nil
}

func inWindow(window models.ReminderWindow, days, soon, later int) bool {
	switch window {
	case models.Window15Days:
		return days >= 0 && days <= soon
	case models.Window60Days:
		return days >= 0 && days <= later
	case models.WindowOverdue:
		return days < 0
	default: // WindowAll and unrecognized values
		return true
	}
}

// CountUpcoming returns reminders due within the later window, for the
// dashboard stat card
func (s *ReminderService) CountUpcoming() int {
	reminders, err := s.ListReminders(models.Window60Days)
	if err != nil {
		return 0
	}
	return len(reminders)
}

func (s *ReminderService) DeleteRecord(id int) error {
	return s.Services.Delete(id)
}
