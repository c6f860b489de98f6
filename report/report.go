// Package report turns errors into structured logging fields.
//
// The okerr packages never log by themselves; callers that do log use these
// adapters so every logger sees the same shape:
//
//	error.msg    head message
//	error.chain  message of every chain entry, head first
//	error.root   innermost message
package report

import (
	"log/slog"

	"github.com/inconshreveable/log15"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-okerr/okerr"
)

// Key is the field name every adapter logs the error under.
const Key = "error"

// messages normalizes err and returns its chain messages. Nil errors and
// zero okerr.Error values have none.
func messages(err error) []string {
	return okerr.FromBoxed(err).Messages()
}

// Slog returns the error as an slog group. A nil err gives an empty Attr,
// which slog handlers drop.
func Slog(err error) slog.Attr {
	msgs := messages(err)
	if len(msgs) == 0 {
		return slog.Attr{}
	}

	return slog.Any(Key, okerr.FromBoxed(err))
}

// Zap returns the error as a zap object field, or zap.Skip for nil.
func Zap(err error) zap.Field {
	msgs := messages(err)
	if len(msgs) == 0 {
		return zap.Skip()
	}

	return zap.Object(Key, chainObject(msgs))
}

// Logrus returns fields for logrus.WithFields. Nil gives nil fields.
func Logrus(err error) logrus.Fields {
	msgs := messages(err)
	if len(msgs) == 0 {
		return nil
	}

	return logrus.Fields{
		Key + ".msg":   msgs[0],
		Key + ".chain": msgs,
		Key + ".root":  msgs[len(msgs)-1],
	}
}

// Log15 returns a context for log15 loggers. Nil gives nil.
func Log15(err error) log15.Ctx {
	msgs := messages(err)
	if len(msgs) == 0 {
		return nil
	}

	return log15.Ctx{
		Key:            msgs[0],
		Key + "_chain": msgs,
		Key + "_root":  msgs[len(msgs)-1],
	}
}

// chainObject is a non-empty list of chain messages, head first.
type chainObject []string

func (msgs chainObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", msgs[0])
	enc.AddString("root", msgs[len(msgs)-1])

	return enc.AddArray("chain", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, m := range msgs {
			ae.AppendString(m)
		}

		return nil
	}))
}
