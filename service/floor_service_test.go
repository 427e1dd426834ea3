package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/service"
	test_mock "github.com/hospicore/facility/api/test/mock"
	"github.com/hospicore/facility/api/util"
)

func newFloorServiceWithBus(api *test_mock.MockDirectoryAPI, bus *util.EventBus) service.IFloorService {
	return service.NewFloorService(api, util.NewCacheService(), util.NewNotificationService(), bus)
}

func subscribeFloorsChanged(bus *util.EventBus) chan model.FloorsChanged {
	got := make(chan model.FloorsChanged, 1)
	bus.Subscribe(util.EventFloorsChanged, func(ctx context.Context, event util.Event) error {
		change, _ := event.Payload.(model.FloorsChanged)
		got <- change
		return nil
	})
	return got
}

func TestAddFloors_PublishesCreationEvent(t *testing.T) {
	api := new(test_mock.MockDirectoryAPI)
	bus := util.NewEventBus()
	svc := newFloorServiceWithBus(api, bus)
	got := subscribeFloorsChanged(bus)

	api.On("AddFloors", mock.Anything, mock.Anything, 2).Return("Pisos agregados", nil)

	msg, err := svc.AddFloors(context.Background(), adminSession(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Pisos agregados", msg)

	select {
	case change := <-got:
		assert.Equal(t, "created", change.ChangeType)
		assert.Equal(t, 2, change.Count)
	case <-time.After(time.Second):
		t.Fatal("no floors-changed event published")
	}
}

func TestDeleteFloor_PublishesDeletionEvent(t *testing.T) {
	api := new(test_mock.MockDirectoryAPI)
	bus := util.NewEventBus()
	svc := newFloorServiceWithBus(api, bus)
	got := subscribeFloorsChanged(bus)

	api.On("ListFloorBeds", mock.Anything, mock.Anything, 3).Return([]model.Bed{}, nil)
	api.On("DeleteFloor", mock.Anything, mock.Anything, 3).Return("Piso eliminado", nil)

	msg, err := svc.DeleteFloor(context.Background(), adminSession(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Piso eliminado", msg)

	select {
	case change := <-got:
		assert.Equal(t, "deleted", change.ChangeType)
		assert.Equal(t, 1, change.Count)
	case <-time.After(time.Second):
		t.Fatal("no floors-changed event published")
	}
}

func TestDeleteFloor_FloorWithBedsRejectedLocally(t *testing.T) {
	api := new(test_mock.MockDirectoryAPI)
	bus := util.NewEventBus()
	svc := newFloorServiceWithBus(api, bus)

	api.On("ListFloorBeds", mock.Anything, mock.Anything, 3).Return([]model.Bed{
		{ID: 11, FloorID: 3, Name: "Piso3-1", State: model.BedFree},
	}, nil)

	_, err := svc.DeleteFloor(context.Background(), adminSession(), 3)
	require.ErrorIs(t, err, facility_errors.ErrFloorHasBeds)
	api.AssertNotCalled(t, "DeleteFloor", mock.Anything, mock.Anything, mock.Anything)
}
