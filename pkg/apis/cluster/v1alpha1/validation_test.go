package v1alpha1_test

import (
	"strings"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/stretchr/testify/require"
)

func TestValidateClusterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple", input: "demo"},
		{name: "single letter", input: "a"},
		{name: "with digits and hyphen", input: "team-a2"},
		{name: "empty", input: "", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "uppercase", input: "Demo", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "trailing hyphen", input: "demo-", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "leading digit", input: "1demo", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "path separator", input: "../demo", wantErr: v1alpha1.ErrClusterNameInvalid},
		{
			name:    "too long",
			input:   "a" + strings.Repeat("b", v1alpha1.ClusterNameMaxLength),
			wantErr: v1alpha1.ErrClusterNameTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v1alpha1.ValidateClusterName(tc.input)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
