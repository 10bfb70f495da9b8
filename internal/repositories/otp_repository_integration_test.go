//go:build integration

package repositories_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"finvox/internal/models"
	"finvox/internal/repositories"
	"finvox/internal/seed"
	"finvox/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepository_VerifyConsumesCode(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	otps := repositories.NewOTPRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	phone := f.PhoneNumber()
	now := time.Now().UTC()

	require.NoError(t, otps.Create(ctx, &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "482913",
		ExpiresAt:   now.Add(models.OTPValidity),
	}))

	require.NoError(t, otps.Verify(ctx, phone, "482913", now))

	// The row was consumed; the same code cannot verify twice.
	err = otps.Verify(ctx, phone, "482913", now)
	assert.ErrorIs(t, err, repositories.ErrOTPNotFound)
}

func TestOTPRepository_VerifyExactlyOnceUnderContention(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	otps := repositories.NewOTPRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	phone := f.PhoneNumber()
	now := time.Now().UTC()

	require.NoError(t, otps.Create(ctx, &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "777777",
		ExpiresAt:   now.Add(models.OTPValidity),
	}))

	const attempts = 8
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = otps.Verify(ctx, phone, "777777", now)
		}(i)
	}
	wg.Wait()

	// The consuming delete checks its row count, so no matter how the
	// attempts interleave exactly one wins and the rest see the code as
	// already gone.
	var succeeded int
	for _, res := range results {
		if res == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, res, repositories.ErrOTPNotFound)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestOTPRepository_ExpiryIsStrict(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	otps := repositories.NewOTPRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	phone := f.PhoneNumber()

	issued := time.Now().UTC().Add(-time.Minute)
	expiry := issued.Add(models.OTPValidity)

	require.NoError(t, otps.Create(ctx, &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "111111",
		ExpiresAt:   expiry,
	}))

	t.Run("valid strictly before expiry", func(t *testing.T) {
		otp, err := otps.LatestValid(ctx, phone, expiry.Add(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, "111111", otp.OTPCode)
	})

	t.Run("invalid at expiry instant", func(t *testing.T) {
		_, err := otps.LatestValid(ctx, phone, expiry)
		assert.ErrorIs(t, err, repositories.ErrOTPNotFound)
	})

	t.Run("expired code cannot verify", func(t *testing.T) {
		err := otps.Verify(ctx, phone, "111111", expiry.Add(time.Minute))
		assert.ErrorIs(t, err, repositories.ErrOTPNotFound)
	})
}

func TestOTPRepository_LatestWinsAndMismatch(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	otps := repositories.NewOTPRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	phone := f.PhoneNumber()
	now := time.Now().UTC()

	older := &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "222222",
		CreatedAt:   now.Add(-2 * time.Minute),
		ExpiresAt:   now.Add(3 * time.Minute),
	}
	newer := &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "333333",
		CreatedAt:   now.Add(-1 * time.Minute),
		ExpiresAt:   now.Add(4 * time.Minute),
	}
	require.NoError(t, otps.Create(ctx, older))
	require.NoError(t, otps.Create(ctx, newer))

	// Only the newest code counts, so an older still-unexpired one is a
	// mismatch.
	assert.ErrorIs(t, otps.Verify(ctx, phone, "222222", now), repositories.ErrOTPMismatch)
	require.NoError(t, otps.Verify(ctx, phone, "333333", now))
}

func TestOTPRepository_Cleanup(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	otps := repositories.NewOTPRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)
	phone := f.PhoneNumber()
	now := time.Now().UTC()

	require.NoError(t, otps.Create(ctx, &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "444444",
		ExpiresAt:   now.Add(-time.Minute),
	}))
	require.NoError(t, otps.Create(ctx, &models.OTP{
		PhoneNumber: phone,
		OTPCode:     "555555",
		ExpiresAt:   now.Add(5 * time.Minute),
	}))

	deleted, err := otps.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	// The live code survives the sweep.
	otp, err := otps.LatestValid(ctx, phone, now)
	require.NoError(t, err)
	assert.Equal(t, "555555", otp.OTPCode)

	require.NoError(t, otps.DeleteByPhone(ctx, phone))
	_, err = otps.LatestValid(ctx, phone, now)
	assert.ErrorIs(t, err, repositories.ErrOTPNotFound)
}
