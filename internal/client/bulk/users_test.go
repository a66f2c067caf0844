package bulk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarkpapers/quark/internal/client/models"
)

func TestParseUsers(t *testing.T) {
	csv := `username,email,password,role,section
alice,alice@example.com,pass1,student,A
bob,bob@example.com,pass2,teacher,
carol,carol@example.com,pass3,,B
`
	users, issues, err := ParseUsers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Len(t, users, 3)

	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, models.RoleStudent, users[0].Role)
	require.Equal(t, "A", users[0].Section)
	require.Equal(t, models.RoleTeacher, users[1].Role)
	// blank role falls back to student
	require.Equal(t, models.RoleStudent, users[2].Role)
}

func TestParseUsers_HeaderOrderIrrelevant(t *testing.T) {
	csv := `Email,Password,Username
alice@example.com,pass1,alice
`
	users, issues, err := ParseUsers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Len(t, users, 1)
	require.Equal(t, "alice", users[0].Username)
}

func TestParseUsers_MissingHeaders(t *testing.T) {
	csv := `username,role
alice,student
`
	_, _, err := ParseUsers(strings.NewReader(csv))
	require.Error(t, err)
	require.Contains(t, err.Error(), "email")
	require.Contains(t, err.Error(), "password")
	require.NotContains(t, err.Error(), "username")
}

func TestParseUsers_BadRowsReportedByLine(t *testing.T) {
	csv := `username,email,password
alice,alice@example.com,pass1
bob,not-an-email,pass2
,carol@example.com,pass3
dave,dave@example.com,pass4
`
	users, issues, err := ParseUsers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Len(t, issues, 2)

	// 1-based including the header row, like a spreadsheet
	require.Equal(t, 3, issues[0].Line)
	require.Equal(t, 4, issues[1].Line)
}

func TestParseUsers_UnknownRoleFallsBack(t *testing.T) {
	csv := `username,email,password,role
alice,alice@example.com,pass1,SUPERUSER
`
	users, _, err := ParseUsers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, users[0].Role)
}

func TestParseUsers_Empty(t *testing.T) {
	_, _, err := ParseUsers(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyCSV)

	_, _, err = ParseUsers(strings.NewReader("username,email,password\n"))
	require.ErrorIs(t, err, ErrEmptyCSV)
}
