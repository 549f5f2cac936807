package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentMongoRepository_FindByID_MalformedID(t *testing.T) {
	repository := &AppointmentMongoRepository{}

	// "A-999" is not a valid ObjectID, so it can never match a document;
	// the repository reports it as not found without querying.
	appointment, err := repository.FindByID(context.Background(), "A-999")

	assert.NoError(t, err)
	assert.Nil(t, appointment)
}
