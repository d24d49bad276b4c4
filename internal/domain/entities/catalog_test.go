package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookups(t *testing.T) {
	cat := DefaultCatalog("contractor-1")

	t.Run("known keys resolve", func(t *testing.T) {
		assert.InDelta(t, 8.50, cat.FloorTypePrice("red_oak"), 1e-9)
		assert.InDelta(t, 1.15, cat.SizeMultiplier("2_5_inch"), 1e-9)
		assert.InDelta(t, 2.50, cat.FinishPrice("stain"), 1e-9)
		assert.InDelta(t, 0.75, cat.StainPrice("golden_oak"), 1e-9)
	})

	t.Run("unknown keys contribute zero", func(t *testing.T) {
		assert.Zero(t, cat.FloorTypePrice("bamboo"))
		assert.Zero(t, cat.FinishPrice("wax"))
		assert.Zero(t, cat.StainPrice("driftwood"))
	})

	t.Run("unknown size keeps the base price intact", func(t *testing.T) {
		assert.InDelta(t, 1.0, cat.SizeMultiplier("7_inch"), 1e-9)
	})

	t.Run("empty stain key means no stain", func(t *testing.T) {
		assert.Zero(t, cat.StainPrice(""))
	})

	t.Run("zero multiplier entry falls back to identity", func(t *testing.T) {
		c := Catalog{FloorSizes: map[string]CatalogEntry{"odd": {Key: "odd"}}}
		assert.InDelta(t, 1.0, c.SizeMultiplier("odd"), 1e-9)
	})
}

func TestProjectInstallmentAccess(t *testing.T) {
	p := Project{
		Deposit:  Installment{Amount: 937.80},
		Progress: Installment{Amount: 468.90},
		Final:    Installment{Amount: 156.30},
	}

	assert.InDelta(t, 937.80, p.Installment(InstallmentDeposit).Amount, 1e-9)
	assert.InDelta(t, 468.90, p.Installment(InstallmentProgress).Amount, 1e-9)
	assert.InDelta(t, 156.30, p.Installment(InstallmentFinal).Amount, 1e-9)

	p.SetInstallment(InstallmentProgress, Installment{Amount: 500, Paid: true})
	assert.True(t, p.Progress.Paid)
	assert.InDelta(t, 500, p.Progress.Amount, 1e-9)
}

func TestSignedAndFullySigned(t *testing.T) {
	p := Project{}
	assert.False(t, p.Signed(PartyCustomer))
	assert.False(t, p.FullySigned())

	p.CustomerSignature = "sig"
	assert.True(t, p.Signed(PartyCustomer))
	assert.False(t, p.FullySigned())

	p.ContractorSignature = "sig"
	assert.True(t, p.FullySigned())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidSchedulePolicy(Schedule603010))
	assert.True(t, ValidSchedulePolicy(ScheduleCustom))
	assert.False(t, ValidSchedulePolicy("weekly"))

	assert.True(t, ValidInstallmentKind(InstallmentDeposit))
	assert.False(t, ValidInstallmentKind("retainer"))

	assert.True(t, ValidSignatureParty(PartyContractor))
	assert.False(t, ValidSignatureParty("witness"))
}

func TestRoomArea(t *testing.T) {
	assert.InDelta(t, 120, RoomMeasurement{Length: 12, Width: 10}.Area(), 1e-9)
	assert.Zero(t, RoomMeasurement{Length: 12}.Area())
}
