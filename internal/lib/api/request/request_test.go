package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		param   string
		want    int
		wantErr error
	}{
		{name: "Valid", param: "12", want: 12},
		{name: "Missing", param: "", wantErr: ErrMissingID},
		{name: "Not a number", param: "abc", wantErr: ErrInvalidID},
		{name: "Zero", param: "0", wantErr: ErrInvalidID},
		{name: "Negative", param: "-3", wantErr: ErrInvalidID},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.param)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := ID(req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
