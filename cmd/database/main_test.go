package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuperuserFromEnv(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", " root@example.com ")
	t.Setenv("SUPERUSER_PASSWORD", "super-secret")

	req := superuserFromEnv()
	require.Equal(t, "admin", req.Name)
	require.Equal(t, "root@example.com", req.Email)
	require.Equal(t, "super-secret", req.Password)
}

func TestCreateSuperuserNeedsCredentials(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "")
	t.Setenv("SUPERUSER_PASSWORD", "")

	err := createSuperuser(context.Background(), nil, superuserFromEnv())
	require.EqualError(t, err, "SUPERUSER_EMAIL and SUPERUSER_PASSWORD must be set")
}
