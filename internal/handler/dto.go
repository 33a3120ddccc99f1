package handler

import (
	"bytes"
	"encoding/json"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = UserDTO{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			RegisteredAt: u.RegisteredAt,
		}
	}
	return dtos
}

// PostDTO is the JSON representation of a post.
type PostDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	Likes     int    `json:"likes"`
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = PostDTO{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			Likes:     p.Likes,
		}
	}
	return dtos
}

// UserActivityDTO is the JSON representation of the active/inactive split.
type UserActivityDTO struct {
	Active   int `json:"Active"`
	Inactive int `json:"Inactive"`
}

// StatisticsDTO is the JSON representation of the dashboard statistics.
type StatisticsDTO struct {
	Total        int             `json:"total"`
	ByMonth      MonthCountsDTO  `json:"byMonth"`
	UserActivity UserActivityDTO `json:"userActivity"`
	TotalLikes   int             `json:"totalLikes"`
}

// MonthCountsDTO encodes as a JSON object whose keys keep calendar order.
// The dashboard uses the key order for the chart's x axis.
type MonthCountsDTO []domain.MonthCount

func (m MonthCountsDTO) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mc := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mc.Month)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(mc.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toStatisticsDTO(s domain.Statistics) StatisticsDTO {
	return StatisticsDTO{
		Total:   s.Total,
		ByMonth: MonthCountsDTO(s.ByMonth),
		UserActivity: UserActivityDTO{
			Active:   s.UserActivity.Active,
			Inactive: s.UserActivity.Inactive,
		},
		TotalLikes: s.TotalLikes,
	}
}
