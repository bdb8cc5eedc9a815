// Package seed fills the store with reproducible sample records.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/provider"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const seededDays = 40

// User is a sample user and the timezone its nights are recorded in.
type User struct {
	ID       uuid.UUID
	Timezone string
}

// Users are the sample users written by Run.
var Users = []User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

// Run imports seededDays of records for every sample user ending at now.
// Users that already have sleep in that range are skipped, so Run is safe
// to call multiple times.
func Run(ctx context.Context, records provider.DataProvider, importer service.ImportService, log *logrus.Logger, now time.Time) error {
	to := domain.DateOf(now.UTC())
	from := to.AddDays(-seededDays)

	for i, user := range Users {
		existing, err := records.FetchSleep(ctx, user.ID, from, to)
		if err != nil {
			return fmt.Errorf("check user %s: %w", user.ID, err)
		}
		if len(existing) > 0 {
			log.WithField("user_id", user.ID).Debug("seed data already present")
			continue
		}

		loc, err := time.LoadLocation(user.Timezone)
		if err != nil {
			return fmt.Errorf("load timezone %s: %w", user.Timezone, err)
		}

		batch := Generate(rand.New(rand.NewSource(int64(i+1))), loc, now, seededDays)
		if _, err := importer.Import(ctx, user.ID, batch, user.Timezone); err != nil {
			return fmt.Errorf("import user %s: %w", user.ID, err)
		}
	}

	log.WithField("users", len(Users)).Info("seed completed")
	return nil
}

// Generate builds days of plausible records ending the night before now,
// recorded in loc. Sleep lengthens slightly with steps and shortens with
// stress so the correlations have something to find.
func Generate(rng *rand.Rand, loc *time.Location, now time.Time, days int) domain.RecordBatch {
	var batch domain.RecordBatch
	today := now.In(loc)

	for i := days; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(domain.DateLayout)

		steps := float64(5000 + rng.Intn(8000))
		active := float64(20 + rng.Intn(60))
		stress := float64(25 + rng.Intn(50))

		bedtime := time.Date(day.Year(), day.Month(), day.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, loc)
		duration := 390 + float64(rng.Intn(60)) + (steps-9000)/200 - (stress-50)/2
		wake := bedtime.Add(time.Duration(duration) * time.Minute)
		deep := duration * (0.18 + rng.Float64()*0.06)
		rem := duration * (0.20 + rng.Float64()*0.05)
		awake := float64(15 + rng.Intn(40))
		light := duration - deep - rem - awake
		efficiency := 100 * (duration - awake) / duration

		batch.Sleep = append(batch.Sleep, domain.SleepRecord{
			ID:         fmt.Sprintf("seed-sleep-%s", date),
			StartTime:  bedtime.Format(time.RFC3339),
			EndTime:    wake.Format(time.RFC3339),
			Duration:   &duration,
			Efficiency: &efficiency,
			Stages:     []byte(fmt.Sprintf(`{"deep":%.0f,"light":%.0f,"rem":%.0f,"awake":%.0f}`, deep, light, rem, awake)),
		})
		batch.Activity = append(batch.Activity, domain.ActivityRecord{
			ID:            fmt.Sprintf("seed-activity-%s", date),
			Date:          date,
			Steps:         &steps,
			ActiveMinutes: &active,
			Calories:      floatPtr(1800 + active*8),
		})
		batch.Stress = append(batch.Stress, domain.StressRecord{
			ID:           fmt.Sprintf("seed-stress-%s", date),
			Date:         date,
			AverageScore: &stress,
			MaxScore:     floatPtr(stress + 20),
			MinScore:     floatPtr(stress - 20),
		})

		if rng.Float32() < 0.5 {
			satisfaction := 2 + rng.Intn(4)
			if duration >= 450 {
				satisfaction = 4 + rng.Intn(2)
			}
			condition := 1 + rng.Intn(5)
			batch.Feedback = append(batch.Feedback, domain.FeedbackRecord{
				Date:              date,
				SleepSatisfaction: &satisfaction,
				MorningCondition:  &condition,
			})
		}
	}
	return batch
}

func floatPtr(v float64) *float64 {
	return &v
}
