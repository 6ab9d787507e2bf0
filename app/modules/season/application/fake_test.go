package seasonservice

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
)

// ------------------------
// Fake Course Provider
// ------------------------

// FakeCourseProvider provides a programmable stub for coursedb.Provider.
type FakeCourseProvider struct {
	trace []string

	GetCourseFunc func(name string) (coursedomain.Course, error)
}

func (f *FakeCourseProvider) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCourseProvider) GetCourse(name string) (coursedomain.Course, error) {
	f.trace = append(f.trace, "GetCourse:"+name)
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(name)
	}
	return coursedomain.Course{}, coursedb.ErrCourseNotFound
}

var _ coursedb.Provider = (*FakeCourseProvider)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type publishedMessage struct {
	Topic   string
	Message *message.Message
}

// FakePublisher records published messages.
type FakePublisher struct {
	mu        sync.Mutex
	Published []publishedMessage

	PublishFunc func(topic string, msgs ...*message.Message) error
}

func (f *FakePublisher) Publish(topic string, msgs ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishFunc != nil {
		if err := f.PublishFunc(topic, msgs...); err != nil {
			return err
		}
	}
	for _, m := range msgs {
		f.Published = append(f.Published, publishedMessage{Topic: topic, Message: m})
	}
	return nil
}

func (f *FakePublisher) Close() error { return nil }

var _ message.Publisher = (*FakePublisher)(nil)
