package provider

import (
	"context"
	"time"
)

// Static serves the bundled media list. It backs degraded mode when the live
// provider fails and doubles as the seed backend for local development.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (p *Static) Name() string { return "static" }

func (p *Static) List(ctx context.Context) ([]StorageObject, error) {
	objects := make([]StorageObject, len(staticObjects))
	copy(objects, staticObjects)
	return objects, nil
}

func day(offset int) time.Time {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

// Bundled objects mirror a small slice of the real bucket layout so the
// degraded gallery still shows every curated category.
var staticObjects = []StorageObject{
	{Key: "youth/youth-school/1. School Visit Soweto.webp", URL: "/images/gallery/youth-school-1.webp", LastModified: day(0)},
	{Key: "youth/youth-school/2. Classroom Session.webp", URL: "/images/gallery/youth-school-2.webp", LastModified: day(2)},
	{Key: "youth/youth-school/3. Learner Mentorship.webp", URL: "/images/gallery/youth-school-3.webp", LastModified: day(4)},
	{Key: "youth/youth-workshops/1. Skills Workshop.webp", URL: "/images/gallery/youth-workshops-1.webp", LastModified: day(6)},
	{Key: "youth/youth-workshops/2. Careers Day.webp", URL: "/images/gallery/youth-workshops-2.webp", LastModified: day(8)},
	{Key: "youth/youth-leadership/1. Leadership Camp.webp", URL: "/images/gallery/youth-leadership-1.webp", LastModified: day(10)},
	{Key: "community/community-events/1. Community Gathering.webp", URL: "/images/gallery/community-events-1.webp", LastModified: day(12)},
	{Key: "community/community-events/2. Food Drive.webp", URL: "/images/gallery/community-events-2.webp", LastModified: day(14)},
	{Key: "community/community-workshops/1. Adult Literacy Class.webp", URL: "/images/gallery/community-workshops-1.webp", LastModified: day(16)},
	{Key: "culture/culture-celebrations/1. Heritage Day.webp", URL: "/images/gallery/culture-celebrations-1.webp", LastModified: day(18)},
	{Key: "culture/culture-preservation/1. Traditional Craft.webp", URL: "/images/gallery/culture-preservation-1.webp", LastModified: day(20)},
	{Key: "events/events-fundraisers/1. Annual Gala.webp", URL: "/images/gallery/events-fundraisers-1.webp", LastModified: day(22)},
	{Key: "events/events-conferences/1. Youth Summit.webp", URL: "/images/gallery/events-conferences-1.webp", LastModified: day(24)},
	{Key: "events/events-conferences/2. Panel Discussion.mp4", URL: "/images/gallery/events-conferences-2.mp4", LastModified: day(26)},
}
