package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestSalonServicesSeeded(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/salon/services", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var services []struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Duration int     `json:"duration"`
	}
	decodeBody(t, resp, &services)
	if len(services) != 8 {
		t.Fatalf("want 8 seeded services, got %d", len(services))
	}

	one, err := app.Test(jsonReq("GET", "/api/salon/services/1", ""))
	if err != nil {
		t.Fatal(err)
	}
	if one.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", one.StatusCode)
	}

	missing, err := app.Test(jsonReq("GET", "/api/salon/services/999", ""))
	if err != nil {
		t.Fatal(err)
	}
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}

func TestSalonTeamSpecialtiesSplit(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/salon/team", ""))
	if err != nil {
		t.Fatal(err)
	}
	var team []struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		Role        string   `json:"role"`
		Specialties []string `json:"specialties"`
	}
	decodeBody(t, resp, &team)
	if len(team) != 6 {
		t.Fatalf("want 6 team members, got %d", len(team))
	}
	if len(team[0].Specialties) == 0 {
		t.Fatalf("specialties not split into array: %+v", team[0])
	}
}

func TestSalonGalleryCategoryFilter(t *testing.T) {
	app, _ := newTestApp(t)

	all, err := app.Test(jsonReq("GET", "/api/salon/gallery", ""))
	if err != nil {
		t.Fatal(err)
	}
	var items []struct {
		Category string `json:"category"`
	}
	decodeBody(t, all, &items)
	if len(items) != 8 {
		t.Fatalf("want 8 gallery items, got %d", len(items))
	}

	category := items[0].Category
	filtered, err := app.Test(jsonReq("GET", "/api/salon/gallery?category="+category, ""))
	if err != nil {
		t.Fatal(err)
	}
	var subset []struct {
		Category string `json:"category"`
	}
	decodeBody(t, filtered, &subset)
	if len(subset) == 0 || len(subset) >= len(items) {
		t.Fatalf("filter returned %d of %d items", len(subset), len(items))
	}
	for _, it := range subset {
		if it.Category != category {
			t.Fatalf("wrong category in filtered result: %+v", it)
		}
	}
}

func TestSalonSubmitReview(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/salon/reviews",
		`{"name":"Dana","rating":5,"comment":"Best balayage in town"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// New review shows up first in the listing.
	list, err := app.Test(jsonReq("GET", "/api/salon/reviews", ""))
	if err != nil {
		t.Fatal(err)
	}
	var reviews []struct {
		Name   string `json:"name"`
		Rating int    `json:"rating"`
	}
	decodeBody(t, list, &reviews)
	if len(reviews) != 5 {
		t.Fatalf("want 4 seeded + 1 new review, got %d", len(reviews))
	}
	if reviews[0].Name != "Dana" {
		t.Fatalf("new review not first: %+v", reviews[0])
	}

	bad, err := app.Test(jsonReq("POST", "/api/salon/reviews", `{"name":"Dana","rating":6}`))
	if err != nil {
		t.Fatal(err)
	}
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("rating 6 expected 400, got %d", bad.StatusCode)
	}
}

func TestSalonBookingFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/salon/bookings",
		`{"name":"Riley","email":"riley@example.com","phone":"+1 (555) 010-0199",
		  "service_id":1,"stylist_id":2,"date":"2026-09-15","time":"14:30","notes":"First visit"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		ID        int64  `json:"id"`
		Reference string `json:"reference"`
		Message   string `json:"message"`
	}
	decodeBody(t, resp, &created)
	if created.ID == 0 || created.Reference == "" {
		t.Fatalf("bad booking response: %+v", created)
	}

	get, err := app.Test(jsonReq("GET", fmt.Sprintf("/api/salon/bookings/%d", created.ID), ""))
	if err != nil {
		t.Fatal(err)
	}
	if get.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.StatusCode)
	}
	var booking struct {
		Reference   string  `json:"reference"`
		ServiceName *string `json:"service_name"`
		StylistName *string `json:"stylist_name"`
	}
	decodeBody(t, get, &booking)
	if booking.Reference != created.Reference {
		t.Fatalf("reference mismatch: %+v", booking)
	}
	if booking.ServiceName == nil || booking.StylistName == nil {
		t.Fatalf("joined names missing: %+v", booking)
	}
}

func TestSalonBookingValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := map[string]string{
		"missing email": `{"name":"R","phone":"5550100","date":"2026-09-15","time":"14:30"}`,
		"bad date":      `{"name":"R","email":"r@e.com","phone":"5550100","date":"15/09/2026","time":"14:30"}`,
		"bad time":      `{"name":"R","email":"r@e.com","phone":"5550100","date":"2026-09-15","time":"2pm"}`,
		"bad phone":     `{"name":"R","email":"r@e.com","phone":"call me","date":"2026-09-15","time":"14:30"}`,
	}
	for name, body := range cases {
		resp, err := app.Test(jsonReq("POST", "/api/salon/bookings", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}

func TestSalonStats(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/salon/stats", ""))
	if err != nil {
		t.Fatal(err)
	}
	var stats struct {
		Services        int     `json:"services"`
		Stylists        int     `json:"stylists"`
		Reviews         int     `json:"reviews"`
		AverageRating   float64 `json:"averageRating"`
		HappyClients    int     `json:"happyClients"`
		YearsExperience int     `json:"yearsExperience"`
	}
	decodeBody(t, resp, &stats)
	if stats.Services != 8 || stats.Stylists != 6 || stats.Reviews != 4 {
		t.Fatalf("bad live counts: %+v", stats)
	}
	if stats.AverageRating < 1 || stats.AverageRating > 5 {
		t.Fatalf("average rating out of range: %+v", stats)
	}
	if stats.HappyClients != 2500 || stats.YearsExperience != 15 {
		t.Fatalf("bad static counters: %+v", stats)
	}
}
