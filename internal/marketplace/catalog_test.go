package marketplace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func priced(id string, price int) Service {
	return Service{ID: id, Title: "Listing " + id, Price: price, IsApproved: true}
}

func TestApprovedFiltersUnapproved(t *testing.T) {
	services := []Service{
		{ID: "a", IsApproved: true},
		{ID: "b", IsApproved: false},
		{ID: "c", IsApproved: true},
	}
	got := Approved(services)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[1].ID)
}

func TestPriceRangeInclusive(t *testing.T) {
	services := []Service{priced("a", 50), priced("b", 150), priced("c", 300)}

	got := Query{MinPrice: intPtr(100), MaxPrice: intPtr(200)}.Apply(services)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)

	// Bounds are inclusive.
	got = Query{MinPrice: intPtr(50), MaxPrice: intPtr(300)}.Apply(services)
	require.Len(t, got, 3)

	// Absent bounds leave the set untouched.
	got = Query{}.Apply(services)
	require.Len(t, got, 3)
}

func TestSingleSidedBounds(t *testing.T) {
	services := []Service{priced("a", 50), priced("b", 150), priced("c", 300)}

	got := Query{MinPrice: intPtr(151)}.Apply(services)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].ID)

	got = Query{MaxPrice: intPtr(150)}.Apply(services)
	require.Len(t, got, 2)
}

func TestSearchMatchesTitleDescriptionURL(t *testing.T) {
	services := []Service{
		{ID: "a", Title: "Tech guest post", IsApproved: true},
		{ID: "b", Description: "Health and TECH topics", IsApproved: true},
		{ID: "c", WebsiteURL: "https://techdaily.example.com", IsApproved: true},
		{ID: "d", Title: "Finance blog", IsApproved: true},
	}

	got := Query{Search: "tech"}.Apply(services)
	require.Len(t, got, 3)
	for _, svc := range got {
		require.NotEqual(t, "d", svc.ID)
	}
}

func TestAuthorityScoreBounds(t *testing.T) {
	services := []Service{
		{ID: "a", DA: 30, DR: 70, IsApproved: true},
		{ID: "b", DA: 55, DR: 40, IsApproved: true},
		{ID: "c", DA: 80, DR: 90, IsApproved: true},
	}

	got := Query{MinDA: intPtr(50)}.Apply(services)
	require.Len(t, got, 2)

	got = Query{MinDA: intPtr(50), MinDR: intPtr(50)}.Apply(services)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].ID)

	got = Query{MaxDA: intPtr(55), MaxDR: intPtr(70)}.Apply(services)
	require.Len(t, got, 2)
}

func TestSortModes(t *testing.T) {
	services := []Service{
		{ID: "a", Price: 200, DA: 10, DR: 90, IsApproved: true},
		{ID: "b", Price: 100, DA: 50, DR: 30, IsApproved: true},
		{ID: "c", Price: 300, DA: 30, DR: 60, IsApproved: true},
	}

	ids := func(in []Service) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = s.ID
		}
		return out
	}

	require.Equal(t, []string{"a", "b", "c"}, ids(Query{Sort: SortNewest}.Apply(services)), "newest keeps collection order")
	require.Equal(t, []string{"b", "a", "c"}, ids(Query{Sort: SortPriceAsc}.Apply(services)))
	require.Equal(t, []string{"c", "a", "b"}, ids(Query{Sort: SortPriceDesc}.Apply(services)))
	require.Equal(t, []string{"b", "c", "a"}, ids(Query{Sort: SortDADesc}.Apply(services)))
	require.Equal(t, []string{"a", "c", "b"}, ids(Query{Sort: SortDRDesc}.Apply(services)))
}

func TestSortIsStableOnTies(t *testing.T) {
	services := []Service{
		{ID: "a", Price: 100, IsApproved: true},
		{ID: "b", Price: 100, IsApproved: true},
		{ID: "c", Price: 100, IsApproved: true},
	}
	got := Query{Sort: SortPriceAsc}.Apply(services)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "b", got[1].ID)
	require.Equal(t, "c", got[2].ID)
}
