package reservebookcopy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/reservebookcopy"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func givenAvailableCopy() core.Copy {
	return core.Copy{ID: uuid.New(), ISBN: "9781234567890", Status: core.CopyAvailable}
}

func Test_Decide_Success_WhenCopyIsAvailable(t *testing.T) {
	// arrange
	customerID := uuid.New()
	availableCopy := givenAvailableCopy()
	command := reservebookcopy.BuildCommand(GivenCustomerActor(customerID), customerID, "9781234567890", time.Now())

	// act
	result := reservebookcopy.Decide(reservebookcopy.State{
		CustomerExists:     true,
		AvailableCopy:      availableCopy,
		HasAvailableCopies: true,
	}, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToApply())

	event, ok := result.Event.(core.BookCopyReserved)
	assert.True(t, ok)
	assert.Equal(t, availableCopy.ID, event.CopyID)
	assert.Equal(t, customerID, event.CustomerID)

	next := core.EvolveCopy(availableCopy, event)
	assert.Equal(t, core.CopyReserved, next.Status)
	assert.True(t, next.IsHeldBy(customerID))
}

func Test_Decide_Success_WhenLibrarianReservesForCustomer(t *testing.T) {
	// arrange
	command := reservebookcopy.BuildCommand(GivenLibrarian(), uuid.New(), "9781234567890", time.Now())

	// act
	result := reservebookcopy.Decide(reservebookcopy.State{
		CustomerExists:     true,
		AvailableCopy:      givenAvailableCopy(),
		HasAvailableCopies: true,
	}, command)

	// assert
	assert.True(t, result.HasEventToApply())
}

func Test_Decide_Error_WhenNoCopyIsAvailable(t *testing.T) {
	// arrange
	customerID := uuid.New()
	command := reservebookcopy.BuildCommand(GivenCustomerActor(customerID), customerID, "9781234567890", time.Now())

	// act
	result := reservebookcopy.Decide(reservebookcopy.State{CustomerExists: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
	assert.Contains(t, result.HasError().Error(), "no available copies for ISBN 9781234567890")
}

func Test_Decide_Error_WhenCustomerDoesNotExist(t *testing.T) {
	// arrange
	command := reservebookcopy.BuildCommand(GivenLibrarian(), uuid.New(), "9781234567890", time.Now())

	// act
	result := reservebookcopy.Decide(reservebookcopy.State{HasAvailableCopies: true, AvailableCopy: givenAvailableCopy()}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Error_WhenCustomerReservesForSomeoneElse(t *testing.T) {
	// arrange
	command := reservebookcopy.BuildCommand(GivenCustomerActor(uuid.New()), uuid.New(), "9781234567890", time.Now())

	// act
	result := reservebookcopy.Decide(reservebookcopy.State{
		CustomerExists:     true,
		AvailableCopy:      givenAvailableCopy(),
		HasAvailableCopies: true,
	}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrForbidden)
}

func Test_Command_Validate_Fails_WhenISBNIsMalformed(t *testing.T) {
	// arrange
	command := reservebookcopy.BuildCommand(GivenLibrarian(), uuid.New(), "12-34", time.Now())

	// act
	err := command.Validate()

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
}
