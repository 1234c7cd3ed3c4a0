package services

import (
	"testing"
	"time"

	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminderFixture(t *testing.T) (*ReminderService, time.Time) {
	t.Helper()
	clients := repositories.NewClientRepository()
	vehicles := repositories.NewVehicleRepository()
	records := repositories.NewServiceRecordRepository()

	client, err := clients.Create(&models.CreateClientRequest{Name: "Rajesh Kumar", Phone: "9876543210"})
	require.NoError(t, err)
	vehicle, err := vehicles.Create(&models.CreateVehicleRequest{ClientID: client.ID, Model: "Honda City", Plate: "MH01AB1234"})
	require.NoError(t, err)

	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, timeutil.IST)
	dues := map[string]int{
		"Oil Change":      5,   // soon
		"Brake Check":     40,  // later
		"Tyre Rotation":   100, // beyond both windows
		"Insurance Claim": -10, // overdue
	}
	for serviceType, offset := range dues {
		_, err := records.Create(models.ServiceRecord{
			VehicleID: vehicle.ID,
			Type:      serviceType,
			Date:      now.AddDate(0, -6, 0),
			NextDue:   now.AddDate(0, 0, offset),
			Status:    models.ServiceCompleted,
		})
		require.NoError(t, err)
	}

	return NewReminderService(records, vehicles, clients, 15, 60), now
}

func TestListRemindersWindows(t *testing.T) {
	svc, now := newReminderFixture(t)

	collect := func(window models.ReminderWindow) []string {
		reminders, err := svc.listRemindersAt(now, window)
		require.NoError(t, err)
		types := make([]string, 0, len(reminders))
		for _, r := range reminders {
			types = append(types, r.Type)
		}
		return types
	}

	assert.Len(t, collect(models.WindowAll), 4)
	assert.ElementsMatch(t, []string{"Oil Change"}, collect(models.Window15Days))
	assert.ElementsMatch(t, []string{"Oil Change", "Brake Check"}, collect(models.Window60Days))
	assert.ElementsMatch(t, []string{"Insurance Claim"}, collect(models.WindowOverdue))
}

func TestRemindersJoinVehicleAndClient(t *testing.T) {
	svc, now := newReminderFixture(t)

	reminders, err := svc.listRemindersAt(now, models.Window15Days)
	require.NoError(t, err)
	require.Len(t, reminders, 1)

	r := reminders[0]
	assert.Equal(t, "Honda City", r.VehicleModel)
	assert.Equal(t, "MH01AB1234", r.VehiclePlate)
	assert.Equal(t, "Rajesh Kumar", r.ClientName)
	assert.Equal(t, 5, r.DaysUntilDue)
}

func TestCreateRecordValidation(t *testing.T) {
	svc, _ := newReminderFixture(t)

	_, err := svc.CreateRecord(&models.CreateServiceRecordRequest{
		VehicleID: 999,
		Type:      "Oil Change",
		Date:      "2026-01-01",
		NextDue:   "2026-07-01",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = svc.CreateRecord(&models.CreateServiceRecordRequest{
		VehicleID: 1,
		Type:      "Oil Change",
		Date:      "bad-date",
		NextDue:   "2026-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRecordDefaultsStatus(t *testing.T) {
	svc, _ := newReminderFixture(t)

	record, err := svc.CreateRecord(&models.CreateServiceRecordRequest{
		VehicleID: 1,
		Type:      "AC Service",
		Date:      "2026-03-01",
		NextDue:   "2026-09-01",
		Cost:      800,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceScheduled, record.Status)
}
