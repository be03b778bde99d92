package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

func TestAddViewIncrements(t *testing.T) {
	setup(t, "a.mp4")
	svc := NewVisitService(context.Background())

	views, err := svc.AddView("a.mp4")
	require.NoError(t, err)
	assert.EqualValues(t, 1, views)

	views, err = svc.AddView("a.mp4")
	require.NoError(t, err)
	assert.EqualValues(t, 2, views)
}

func TestAddViewUnknownVideo(t *testing.T) {
	setup(t, "a.mp4")
	svc := NewVisitService(context.Background())

	_, err := svc.AddView("missing.mp4")
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}
