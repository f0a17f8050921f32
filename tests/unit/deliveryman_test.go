package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

func TestDeliverymanService_IsEligibleForRental(t *testing.T) {
	svc := service.NewDeliverymanService(new(MockDeliverymanRepo))

	cases := []struct {
		licenseType domain.LicenseType
		eligible    bool
	}{
		{domain.LicenseTypeA, true},
		{domain.LicenseTypeAB, true},
		{domain.LicenseTypeB, false},
		{domain.LicenseType(""), false},
	}
	for _, tc := range cases {
		got := svc.IsEligibleForRental(&domain.Deliveryman{LicenseType: tc.licenseType})
		assert.Equal(t, tc.eligible, got, "license type %q", tc.licenseType)
	}
}

func TestDeliverymanService_CreateDeliveryman(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate CNPJ", func(t *testing.T) {
		repo := new(MockDeliverymanRepo)
		svc := service.NewDeliverymanService(repo)

		repo.On("GetByCNPJ", ctx, "12345678000190").
			Return(&domain.Deliveryman{CNPJ: "12345678000190"}, nil)

		err := svc.CreateDeliveryman(ctx, &domain.Deliveryman{Name: "Joao", CNPJ: "12345678000190"})
		assert.ErrorIs(t, err, service.ErrCNPJTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockDeliverymanRepo)
		svc := service.NewDeliverymanService(repo)

		d := &domain.Deliveryman{Name: "Joao", CNPJ: "12345678000190", LicenseType: domain.LicenseTypeA}
		repo.On("GetByCNPJ", ctx, "12345678000190").Return(nil, errNoRows())
		repo.On("Create", ctx, d).Return(nil)

		err := svc.CreateDeliveryman(ctx, d)
		assert.NoError(t, err)
	})
}
