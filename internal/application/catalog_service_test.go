package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-desk/service-booking/internal/domain"
)

func TestHotelService_AddAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	h1, err := env.hotels.AddHotel(ctx, CreateHotelRequest{Name: " Hotel 1 ", City: " City ", Address: " Addr ", Description: " Desc "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), h1.ID)
	assert.Equal(t, "Hotel 1", h1.Name)
	assert.Equal(t, "Desc", h1.Description)

	h2, err := env.hotels.AddHotel(ctx, CreateHotelRequest{Name: "Hotel 2", City: "City", Address: "Addr"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), h2.ID)

	require.NoError(t, env.hotels.DeleteHotel(ctx, h1.ID))
	all, err := env.hotels.ListHotels(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, h2.ID, all[0].ID)

	err = env.hotels.DeleteHotel(ctx, h1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.hotels.GetHotel(ctx, h1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHotelService_RequiredFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, req := range []CreateHotelRequest{
		{Name: "   ", City: "City", Address: "Addr"},
		{Name: "Hotel", City: "", Address: "Addr"},
		{Name: "Hotel", City: "City", Address: "\t"},
	} {
		_, err := env.hotels.AddHotel(ctx, req)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrEmptyField)
	}

	all, err := env.hotels.ListHotels(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHotelService_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.hotels.AddHotel(ctx, CreateHotelRequest{Name: "Sea Breeze", City: "Odesa", Address: "Beach 1"})
	require.NoError(t, err)
	_, err = env.hotels.AddHotel(ctx, CreateHotelRequest{Name: "Mountain", City: "Yaremche", Address: "Hill 5", Description: "near the SEA of trees"})
	require.NoError(t, err)
	_, err = env.hotels.AddHotel(ctx, CreateHotelRequest{Name: "Center", City: "Kyiv", Address: "Khreshchatyk 1"})
	require.NoError(t, err)

	found, err := env.hotels.SearchHotels(ctx, "  sea ")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Sea Breeze", found[0].Name)
	assert.Equal(t, "Mountain", found[1].Name)

	all, err := env.hotels.SearchHotels(ctx, " ")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := env.hotels.SearchHotels(ctx, "lviv")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClientService_AddUpdateDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.clients.AddClient(ctx, CreateClientRequest{FirstName: " Ivan ", LastName: "Petrenko", Phone: " 123 ", Email: "ivan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ivan", c.FirstName)
	assert.Equal(t, "123", c.Phone)

	_, err = env.clients.AddClient(ctx, CreateClientRequest{FirstName: "", LastName: "X"})
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	phone := "555"
	updated, err := env.clients.UpdateClient(ctx, c.ID, UpdateClientRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, "Ivan", updated.FirstName, "unset fields keep their values")
	assert.Equal(t, "ivan@example.com", updated.Email)

	empty := "  "
	_, err = env.clients.UpdateClient(ctx, c.ID, UpdateClientRequest{LastName: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := env.clients.GetClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Petrenko", stored.LastName, "rejected update is not persisted")

	_, err = env.clients.UpdateClient(ctx, 404, UpdateClientRequest{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, env.clients.DeleteClient(ctx, c.ID))
	assert.ErrorIs(t, env.clients.DeleteClient(ctx, c.ID), domain.ErrNotFound)
}

func TestClientService_SortPersistsOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range [][2]string{{"charlie", "Adams"}, {"Alice", "Zimmer"}, {"bob", "Miller"}} {
		_, err := env.clients.AddClient(ctx, CreateClientRequest{FirstName: name[0], LastName: name[1]})
		require.NoError(t, err)
	}

	byFirst, err := env.clients.SortClientsByFirstName(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "bob", "charlie"}, firstNames(byFirst))

	stored, err := env.clients.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "bob", "charlie"}, firstNames(stored))

	byLast, err := env.clients.SortClientsByLastName(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"charlie", "bob", "Alice"}, firstNames(byLast))

	_, err = env.clients.SortClients(ctx, "email")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.clients.AddClient(ctx, CreateClientRequest{FirstName: "Ivan", LastName: "Petrenko", Email: "ivan@mail.com"})
	require.NoError(t, err)
	_, err = env.clients.AddClient(ctx, CreateClientRequest{FirstName: "Olena", LastName: "Koval", Phone: "+380 50"})
	require.NoError(t, err)

	found, err := env.clients.SearchClients(ctx, "MAIL")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ivan", found[0].FirstName)

	found, err = env.clients.SearchClients(ctx, "+380")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Olena", found[0].FirstName)

	all, err := env.clients.SearchClients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRoomService(t *testing.T) {
	env := newTestEnv(t)
	s := env.seed(t)
	ctx := context.Background()

	_, err := env.rooms.AddRoom(ctx, 99, CreateRoomRequest{Number: "1", Capacity: 1, PricePerNight: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.rooms.AddRoom(ctx, s.hotelID, CreateRoomRequest{Number: "1", Capacity: 0, PricePerNight: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	_, err = env.rooms.AddRoom(ctx, s.hotelID, CreateRoomRequest{Number: "1", Capacity: 1, PricePerNight: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	rooms, err := env.rooms.ListRooms(ctx, s.hotelID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, s.room1ID, rooms[0].ID)

	require.NoError(t, env.rooms.DeleteRoom(ctx, s.room1ID))
	_, err = env.rooms.GetRoom(ctx, s.room1ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, env.rooms.DeleteRoom(ctx, s.room1ID), domain.ErrNotFound)

	_, err = env.rooms.ListRooms(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
