package services

import (
	"errors"
	"testing"
	"time"

	"hotel-engine/models"
)

type bookingFixture struct {
	rooms     *RoomService
	customers *CustomerService
	bookings  *BookingService
	today     time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	rooms := NewRoomService()
	customers := NewCustomerService()
	bookings := NewBookingService(rooms, customers)

	today := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	bookings.now = func() time.Time { return today }

	return &bookingFixture{rooms: rooms, customers: customers, bookings: bookings, today: today}
}

func (f *bookingFixture) registerCustomer(t *testing.T, name string, vip bool) models.Customer {
	t.Helper()
	customer, err := f.customers.Register(name, "guest@example.com", "12345678A", vip)
	if err != nil {
		t.Fatalf("register customer %q: %v", name, err)
	}
	return customer
}

func (f *bookingFixture) date(daysFromToday int) time.Time {
	return f.today.AddDate(0, 0, daysFromToday)
}

func TestBookPreconditionOrder(t *testing.T) {
	f := newBookingFixture(t)

	// Empty inventory wins over every other failure, even an unknown
	// customer and a backwards date range.
	if _, err := f.bookings.Book(99, models.CategorySingle, f.date(1), f.date(0)); !errors.Is(err, ErrNoInventory) {
		t.Fatalf("empty inventory: got %v, want ErrNoInventory", err)
	}

	f.rooms.Register(models.CategorySingle, 50)

	if _, err := f.bookings.Book(99, models.CategorySingle, f.date(0), f.date(1)); !errors.Is(err, ErrUnknownCustomer) {
		t.Fatalf("unknown customer: got %v, want ErrUnknownCustomer", err)
	}

	customer := f.registerCustomer(t, "Alice", false)

	if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(2), f.date(2)); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("equal dates: got %v, want ErrInvalidDateRange", err)
	}
	if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(3), f.date(1)); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("reversed dates: got %v, want ErrInvalidDateRange", err)
	}
	if len(f.bookings.ReservationsFor(1)) != 0 {
		t.Fatal("failed bookings must not create reservations")
	}

	if _, err := f.bookings.Book(customer.ID, models.CategoryBunk, f.date(0), f.date(1)); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("no bunk rooms: got %v, want ErrNoAvailability", err)
	}
}

func TestBookMarksRoomUnavailableOnce(t *testing.T) {
	f := newBookingFixture(t)
	f.rooms.Register(models.CategoryDouble, 80)
	f.rooms.Register(models.CategoryDouble, 90)
	customer := f.registerCustomer(t, "Alice", false)

	first, err := f.bookings.Book(customer.ID, models.CategoryDouble, f.date(0), f.date(2))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first != 1 {
		t.Errorf("first booking got room %d, want 1", first)
	}

	room, _ := f.rooms.Get(first)
	if room.Available {
		t.Error("booked room must be unavailable")
	}

	// Same category again never hands out the booked room.
	second, err := f.bookings.Book(customer.ID, models.CategoryDouble, f.date(0), f.date(2))
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if second == first {
		t.Error("second booking reused a booked room")
	}

	// No rooms of the category remain: permanently unavailable.
	if _, err := f.bookings.Book(customer.ID, models.CategoryDouble, f.date(30), f.date(32)); !errors.Is(err, ErrNoAvailability) {
		t.Errorf("exhausted category: got %v, want ErrNoAvailability", err)
	}
}

func TestBookComputesPrice(t *testing.T) {
	tests := []struct {
		name   string
		vip    bool
		nights int
		want   float64
	}{
		{"regular short stay", false, 3, 300},
		{"vip short stay", true, 3, 270},
		{"regular long stay", false, 7, 665},
		{"vip long stay", true, 7, 598.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			f.rooms.Register(models.CategorySingle, 100)
			customer := f.registerCustomer(t, "Alice", tt.vip)

			roomID, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(0), f.date(tt.nights))
			if err != nil {
				t.Fatalf("Book: %v", err)
			}

			history := f.bookings.ReservationsFor(roomID)
			if len(history) != 1 {
				t.Fatalf("got %d reservations, want 1", len(history))
			}
			r := history[0]
			if r.ID != 1 {
				t.Errorf("reservation id = %d, want 1", r.ID)
			}
			if r.Nights() != tt.nights {
				t.Errorf("nights = %d, want %d", r.Nights(), tt.nights)
			}
			if !almostEqual(r.Price, tt.want) {
				t.Errorf("price = %v, want %v", r.Price, tt.want)
			}
		})
	}
}

func TestBookPromotesFrequentCustomerToVIP(t *testing.T) {
	f := newBookingFixture(t)
	for i := 0; i < 5; i++ {
		f.rooms.Register(models.CategorySingle, 100)
	}
	customer := f.registerCustomer(t, "Alice", false)

	// Four recent bookings. Promotion needs strictly more than three prior
	// reservations, so none of these trigger it.
	for i := 0; i < 4; i++ {
		if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(-30+i), f.date(-28+i)); err != nil {
			t.Fatalf("booking %d: %v", i+1, err)
		}
		got, _ := f.customers.Lookup(customer.ID)
		if got.VIP {
			t.Fatalf("customer promoted too early, after booking %d", i+1)
		}
	}

	// The fifth sees four prior recent reservations and promotes first;
	// its own price reflects the VIP discount (100 * 2 * 0.9).
	roomID, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(1), f.date(3))
	if err != nil {
		t.Fatalf("fifth booking: %v", err)
	}

	got, _ := f.customers.Lookup(customer.ID)
	if !got.VIP {
		t.Fatal("customer should be VIP after the fifth booking")
	}
	history := f.bookings.ReservationsFor(roomID)
	if len(history) != 1 {
		t.Fatalf("got %d reservations, want 1", len(history))
	}
	if !almostEqual(history[0].Price, 180) {
		t.Errorf("fifth booking price = %v, want 180", history[0].Price)
	}
}

func TestBookIgnoresReservationsOutsideLookback(t *testing.T) {
	f := newBookingFixture(t)
	for i := 0; i < 5; i++ {
		f.rooms.Register(models.CategorySingle, 100)
	}
	customer := f.registerCustomer(t, "Alice", false)

	// Four bookings starting more than a year ago do not count toward
	// promotion.
	for i := 0; i < 4; i++ {
		start := f.today.AddDate(-2, 0, i)
		if _, err := f.bookings.Book(customer.ID, models.CategorySingle, start, start.AddDate(0, 0, 2)); err != nil {
			t.Fatalf("historic booking %d: %v", i+1, err)
		}
	}

	if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(1), f.date(3)); err != nil {
		t.Fatalf("fifth booking: %v", err)
	}
	got, _ := f.customers.Lookup(customer.ID)
	if got.VIP {
		t.Error("historic reservations must not count toward VIP promotion")
	}
}

func TestVIPLookbackBoundaryIsStrictlyAfter(t *testing.T) {
	tests := []struct {
		name       string
		startShift int // days relative to today minus one year
		wantVIP    bool
	}{
		{"starts exactly at the cutoff", 0, false},
		{"starts one day after the cutoff", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			for i := 0; i < 5; i++ {
				f.rooms.Register(models.CategorySingle, 100)
			}
			customer := f.registerCustomer(t, "Alice", false)

			start := f.today.AddDate(-VIPLookbackYears, 0, tt.startShift)
			for i := 0; i < 4; i++ {
				if _, err := f.bookings.Book(customer.ID, models.CategorySingle, start, start.AddDate(0, 0, 2)); err != nil {
					t.Fatalf("booking %d: %v", i+1, err)
				}
			}

			if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(1), f.date(3)); err != nil {
				t.Fatalf("fifth booking: %v", err)
			}
			got, _ := f.customers.Lookup(customer.ID)
			if got.VIP != tt.wantVIP {
				t.Errorf("VIP after fifth booking = %v, want %v", got.VIP, tt.wantVIP)
			}
		})
	}
}

func TestReservationsOnlyExistOnBookedRooms(t *testing.T) {
	f := newBookingFixture(t)
	f.rooms.Register(models.CategorySingle, 50)
	f.rooms.Register(models.CategoryDouble, 80)
	customer := f.registerCustomer(t, "Alice", false)

	if _, err := f.bookings.Book(customer.ID, models.CategorySingle, f.date(0), f.date(1)); err != nil {
		t.Fatalf("booking: %v", err)
	}
	// Failed attempts of every user-facing kind leave no history behind.
	f.bookings.Book(customer.ID, models.CategorySingle, f.date(0), f.date(1))
	f.bookings.Book(customer.ID, models.CategoryDouble, f.date(2), f.date(1))
	f.bookings.Book(99, models.CategoryDouble, f.date(0), f.date(1))

	for roomID, history := range f.bookings.ListAll() {
		if len(history) == 0 {
			continue
		}
		room, err := f.rooms.Get(roomID)
		if err != nil {
			t.Fatalf("reservation recorded for unregistered room %d", roomID)
		}
		if room.Available {
			t.Errorf("room %d has reservations but is still available", roomID)
		}
	}
	if len(f.bookings.ReservationsFor(2)) != 0 {
		t.Error("room 2 was never booked and must have an empty history")
	}
}

func TestListAllReturnsDetachedSnapshot(t *testing.T) {
	f := newBookingFixture(t)
	f.rooms.Register(models.CategorySingle, 50)
	f.rooms.Register(models.CategoryDouble, 80)
	customer := f.registerCustomer(t, "Alice", false)

	f.bookings.Book(customer.ID, models.CategorySingle, f.date(0), f.date(1))
	f.bookings.Book(customer.ID, models.CategoryDouble, f.date(0), f.date(1))

	snapshot := f.bookings.ListAll()
	if len(snapshot) != 2 {
		t.Fatalf("snapshot has %d rooms, want 2", len(snapshot))
	}
	for roomID, history := range snapshot {
		if len(history) != 1 {
			t.Errorf("room %d has %d reservations, want 1", roomID, len(history))
		}
	}

	// Mutating the snapshot must not reach the ledger.
	snapshot[1][0].Price = -1
	delete(snapshot, 2)
	if f.bookings.ReservationsFor(1)[0].Price < 0 {
		t.Error("snapshot mutation leaked into the ledger")
	}
	if len(f.bookings.ListAll()) != 2 {
		t.Error("snapshot deletion leaked into the ledger")
	}
}
