package grid

import (
	"reflect"
	"testing"

	"twingrid/structs"
)

func roomsFor(keys ...string) map[string]*structs.Room {
	rooms := make(map[string]*structs.Room, len(keys))
	for _, k := range keys {
		rooms[k] = &structs.Room{SiteID: k, SiteName: "Room " + k, Cells: map[string]*structs.Cell{}}
	}
	return rooms
}

func TestSortRoomsByConfiguredOrder(t *testing.T) {
	cls := NewClassifier([]structs.CategorySort{
		{ID: "c1", Name: "First", Sites: []structs.SiteSortEntry{{SiteID: "s10"}, {SiteID: "s3"}}},
		{ID: "c2", Name: "Second", Sites: []structs.SiteSortEntry{{SiteID: "s1"}}},
	})

	got := SortRooms(roomsFor("s1", "s3", "s10"), cls)
	want := []string{"s10", "s3", "s1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortRoomsUnconfiguredLastThenAlphabetical(t *testing.T) {
	cls := NewClassifier([]structs.CategorySort{
		{ID: "c1", Name: "First", Sites: []structs.SiteSortEntry{{SiteID: "zz"}}},
	})

	got := SortRooms(roomsFor("B", "a", "zz"), cls)
	want := []string{"zz", "a", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortRoomsAlphabeticalFallback(t *testing.T) {
	got := SortRooms(roomsFor("Charlie", "alpha", "Bravo"), NewClassifier(nil))
	want := []string{"alpha", "Bravo", "Charlie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
