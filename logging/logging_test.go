package logging

import (
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"glsb/config"
	"glsb/gpu"
	"glsb/gpu/gputest"
)

func TestNewHonoursLevel(t *testing.T) {
	g := NewWithT(t)

	l, err := New(config.LoggingConfig{Level: "warn"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(l.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
	g.Expect(l.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())

	l, err = New(config.LoggingConfig{Level: "debug", Development: true})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(l.Core().Enabled(zapcore.DebugLevel)).To(BeTrue())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	g := NewWithT(t)

	_, err := New(config.LoggingConfig{Level: "loud"})
	g.Expect(err).To(HaveOccurred())
}

func TestInstallRoutesPackageLogs(t *testing.T) {
	g := NewWithT(t)

	core, logs := observer.New(zapcore.DebugLevel)
	Install(zap.New(core))
	defer Install(zap.NewNop())

	ctx := gpu.NewContext(gputest.NewRecorder())
	buf, err := gpu.NewBuffer[gpu.Vertices](ctx)
	g.Expect(err).NotTo(HaveOccurred())
	buf.Release()

	entries := logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "gpu"
	}).All()
	g.Expect(entries).To(HaveLen(2))
	g.Expect(entries[0].Message).To(Equal("buffer created"))
	g.Expect(entries[1].Message).To(Equal("buffer deleted"))
}
