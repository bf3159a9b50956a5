// Package seed provides helpers to create demo data for the portal stores.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"nexus/internal/models"
	"nexus/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

func ptr(f float64) *float64 { return &f }

// builtinDrafts are the fixed demo posts shown on a fresh portal.
var builtinDrafts = []struct {
	draft  models.PostDraft
	verify bool
}{
	{
		draft: models.PostDraft{
			Kind: models.KindLostFound, Title: "Lost Blue Water Bottle",
			Description: "Lost near the library entrance yesterday evening. Has IIT Ropar sticker.",
			SubType:     "lost", Location: "Central Library", CreatedBy: "Student01",
		},
		verify: true,
	},
	{
		draft: models.PostDraft{
			Kind: models.KindMarketplace, Title: "TI-84 Calculator for Sale",
			Description: "Barely used, perfect for engineering math courses. Original box included.",
			Price:       ptr(2500), Category: "Electronics", CreatedBy: "Student01",
		},
	},
	{
		draft: models.PostDraft{
			Kind: models.KindCabPool, Title: "Chandigarh → IIT Ropar",
			Description: "Looking for co-passengers, splitting fare equally.",
			Route:       "Chandigarh → Rupnagar → IIT Ropar", Date: "2026-02-10", Time: "08:00 AM",
			Seats: 3, CreatedBy: "Student01",
			ContactInfo: &models.ContactInfo{Name: "Arjun", RegNo: "2023CSB1001", Mobile: "9876543210", Email: "arjun@iitrpr.ac.in"},
		},
		verify: true,
	},
	{
		draft: models.PostDraft{
			Kind: models.KindSkill, Title: "Python ↔ Guitar",
			Description:  "Can teach Python/DSA, want to learn guitar.",
			SkillOffered: "Python Programming", SkillWanted: "Guitar", CreatedBy: "Student01",
		},
		verify: true,
	},
	{
		draft: models.PostDraft{
			Kind: models.KindLostFound, Title: "Found AirPods Pro",
			Description: "Found near Kameng Hostel parking. Claim with proof.",
			SubType:     "found", Location: "Kameng Hostel", CreatedBy: "Student01",
		},
	},
}

// Posts seeds the built-in demo posts plus n random ones through the store so
// lifecycle invariants hold, then verifies a share of them.
func Posts(ctx context.Context, posts *store.PostStore, n int) int {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for _, b := range builtinDrafts {
		post := posts.Create(ctx, b.draft)
		if b.verify {
			posts.SetStatus(ctx, post.ID, models.StatusVerified)
		}
		created++
	}

	kinds := []models.PostKind{
		models.KindLostFound, models.KindMarketplace, models.KindCabPool, models.KindSkill,
	}
	for i := 0; i < n; i++ {
		kind := kinds[r.Intn(len(kinds))]
		draft := models.PostDraft{
			Kind:        kind,
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			CreatedBy:   "Student01",
		}
		switch kind {
		case models.KindLostFound:
			if r.Intn(2) == 0 {
				draft.SubType = "lost"
			} else {
				draft.SubType = "found"
			}
			draft.Location = gofakeit.Street()
		case models.KindMarketplace:
			draft.Price = ptr(float64(r.Intn(5000) + 100))
			draft.Category = gofakeit.RandomString([]string{"Electronics", "Books", "Cycles", "Misc"})
		case models.KindCabPool:
			draft.Route = fmt.Sprintf("%s → IIT Ropar", gofakeit.City())
			draft.Seats = r.Intn(3) + 1
			draft.Date = time.Now().AddDate(0, 0, r.Intn(14)).Format("2006-01-02")
			draft.Time = fmt.Sprintf("%02d:00 AM", r.Intn(11)+1)
		case models.KindSkill:
			draft.SkillOffered = gofakeit.HackerNoun()
			draft.SkillWanted = gofakeit.Hobby()
		}

		post := posts.Create(ctx, draft)
		if r.Intn(3) != 0 {
			posts.SetStatus(ctx, post.ID, models.StatusVerified)
		}
		created++
	}
	return created
}

// builtinClasses mirror the default weekly schedule of a fresh portal.
var builtinClasses = []models.ClassEntry{
	{Subject: "Data Structures & Algorithms", Time: "09:00 - 10:00", Room: "LH-1", Day: "Monday", Type: models.ClassLecture},
	{Subject: "Linear Algebra", Time: "10:00 - 11:00", Room: "LH-2", Day: "Monday", Type: models.ClassLecture},
	{Subject: "Operating Systems Lab", Time: "14:00 - 16:00", Room: "CL-1", Day: "Tuesday", Type: models.ClassLab},
	{Subject: "DSA Tutorial", Time: "11:00 - 12:00", Room: "TR-3", Day: "Wednesday", Type: models.ClassTutorial},
	{Subject: "Operating Systems", Time: "09:00 - 10:00", Room: "LH-3", Day: "Thursday", Type: models.ClassLecture},
	{Subject: "Linear Algebra Tutorial", Time: "14:00 - 15:00", Room: "TR-1", Day: "Friday", Type: models.ClassTutorial},
}

// Timetable seeds the default weekly schedule.
func Timetable(ctx context.Context, timetable *store.TimetableStore) int {
	for _, entry := range builtinClasses {
		timetable.Add(ctx, entry)
	}
	return len(builtinClasses)
}
