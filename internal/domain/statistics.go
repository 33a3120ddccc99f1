package domain

// MonthCount is one bar of the posts-per-month chart.
type MonthCount struct {
	Month string
	Count int
}

// UserActivity is the active/inactive split shown in the users chart.
type UserActivity struct {
	Active   int
	Inactive int
}

// Statistics is the dashboard summary derived from the current users and posts.
type Statistics struct {
	Total        int
	ByMonth      []MonthCount
	UserActivity UserActivity
	TotalLikes   int
}
