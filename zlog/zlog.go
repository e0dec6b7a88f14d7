/*
	Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package zlog renders adhocerr cause chains into zerolog events.
//
// An error's Error() text holds only its own message, so logging it with
// zerolog's Err helper drops every cause. Err in this package logs the whole
// chain instead:
//
//	zlog.Err(log.Error(), err).Msg("sync failed")
//
// produces
//
//	{"level":"error","error":{"message":"failed to write report","causes":["disk full"]},"message":"sync failed"}
//
// The package works with any error; chains are walked with adhocerr.Chain,
// which also follows errors.Unwrap.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/dirpx/adhocerr"
)

// Field keys used by the marshalers.
const (
	MessageKey = "message"
	CausesKey  = "causes"
)

type chainObject struct {
	err error
}

// Object returns a marshaler that writes err's message under MessageKey and
// the messages of its causes, outermost first, under CausesKey. The causes
// key is omitted for causeless errors.
func Object(err error) zerolog.LogObjectMarshaler {
	return chainObject{err: err}
}

func (o chainObject) MarshalZerologObject(e *zerolog.Event) {
	if o.err == nil {
		return
	}
	e.Str(MessageKey, messageOf(o.err))
	if adhocerr.Cause(o.err) != nil {
		e.Array(CausesKey, Causes(o.err))
	}
}

type causeArray struct {
	err error
}

// Causes returns a marshaler writing the messages of err's causes as an
// array. err itself is not part of the array.
func Causes(err error) zerolog.LogArrayMarshaler {
	return causeArray{err: err}
}

func (a causeArray) MarshalZerologArray(arr *zerolog.Array) {
	for _, c := range adhocerr.Causes(a.err) {
		arr.Str(messageOf(c))
	}
}

// Err attaches err to ev under zerolog.ErrorFieldName as an Object. A nil
// err leaves the event unchanged, mirroring zerolog's own Err.
func Err(ev *zerolog.Event, err error) *zerolog.Event {
	if err == nil {
		return ev
	}
	return ev.Object(zerolog.ErrorFieldName, Object(err))
}

// Chain attaches the one-line rendering of err's chain, as produced by
// adhocerr.ChainString, under key.
func Chain(ev *zerolog.Event, key string, err error, opts ...adhocerr.ChainOption) *zerolog.Event {
	if err == nil {
		return ev
	}
	return ev.Str(key, adhocerr.ChainString(err, opts...))
}

func messageOf(err error) string {
	if r, ok := err.(interface{ Message() string }); ok {
		return r.Message()
	}
	return err.Error()
}
