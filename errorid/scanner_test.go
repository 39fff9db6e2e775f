package errorid

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanString(t *testing.T, source string) []Record {
	records, err := Scan(strings.NewReader(source))
	require.NoError(t, err)
	return records
}

func TestScanSingleRecord(t *testing.T) {
	records := scanString(t,
		`ErrorId MsgDm::BadCharSet = { ErrorOf(ES_DM,1,E_FAILED,EV_USAGE,0), "Invalid character set." };`)
	require.Len(t, records, 1)
	assert.Equal(t, Record{
		Name:      "BadCharSet",
		Subsystem: "ES_DM",
		Code:      1,
		Severity:  "E_FAILED",
		Generic:   "EV_USAGE",
		ArgCount:  "0",
		Text:      "Invalid character set.",
		Line:      1,
	}, records[0])
}

func TestScanSampleFile(t *testing.T) {
	f := must.M1(os.Open("testdata/msgdm_sample.cc"))
	defer func() { _ = f.Close() }()
	records, err := Scan(f)
	require.NoError(t, err)

	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{
		"DescMissing", "BadCharSet", "NoSuchDepot", "ExCHANGE", "Diff2DataLeft", "UrlInText",
		"TriggerIncomplete2FA", "QuotedText",
	}, names)

	// Record spanning two lines.
	exChange := records[3]
	assert.Equal(t, 365, exChange.Code)
	assert.Equal(t, "[%argc% - no|No] such changelist.", exChange.Text)
	assert.Equal(t, 21, exChange.Line)

	// Trailing line comment is stripped, "//" inside the text is kept.
	assert.Equal(t, "<<<< %depotFile%%depotRev% (%type%)", records[4].Text)
	assert.Equal(t, "See http://www.perforce.com for details.", records[5].Text)

	// Escapes are carried verbatim.
	quoted := records[7]
	assert.Equal(t, `Value \"%value%\" for %field% is invalid.\n`, quoted.Text)
	assert.Equal(t, "ES_DB", quoted.Subsystem)
	assert.Equal(t, "E_FATAL", quoted.Severity)
	assert.Equal(t, "EV_FAULT", quoted.Generic)
	assert.Equal(t, "2", quoted.ArgCount)
}

func TestScanEmpty(t *testing.T) {
	f := must.M1(os.Open("testdata/empty.cc"))
	defer func() { _ = f.Close() }()
	records, err := Scan(f)
	require.NoError(t, err)
	require.Empty(t, records)

	records = scanString(t, "")
	require.Empty(t, records)
}

func TestLineCommentInString(t *testing.T) {
	// Both halves around "//" have an odd number of quotes: the marker is considered inside the string.
	records := scanString(t,
		`ErrorId MsgDm::Url = { ErrorOf( ES_DM, 5, E_INFO, EV_NONE, 0 ), "go to http://example.com now" } ;`)
	require.Len(t, records, 1)
	require.Equal(t, "go to http://example.com now", records[0].Text)

	// Even number of quotes on the left: truncated at the marker, so the record is only completed by the
	// next line.
	records = scanString(t, strings.Join([]string{
		`ErrorId MsgDm::Split = { ErrorOf( ES_DM, 6, E_INFO, EV_NONE, 0 ), // comment "with quotes"`,
		`	"split text" } ;`,
	}, "\n"))
	require.Len(t, records, 1)
	require.Equal(t, "split text", records[0].Text)
	require.Equal(t, 2, records[0].Line)
}

func TestBlockComments(t *testing.T) {
	records := scanString(t, strings.Join([]string{
		`/* one line comment */`,
		`ErrorId MsgDm::A = { ErrorOf( ES_DM, 1, E_INFO, EV_NONE, 0 ), "a" } ;`,
		`/*`,
		`ErrorId MsgDm::Hidden = { ErrorOf( ES_DM, 2, E_INFO, EV_NONE, 0 ), "hidden" } ;`,
		`*/`,
		`   /* indented start`,
		`   end */   `,
		`ErrorId MsgDm::B = { ErrorOf( ES_DM, 3, E_INFO, EV_NONE, 0 ), "b" } ;`,
	}, "\n"))
	require.Len(t, records, 2)
	require.Equal(t, "A", records[0].Name)
	require.Equal(t, "B", records[1].Name)
}

func TestBlockCommentErrors(t *testing.T) {
	// Trailing text after the end of a multi-line block comment.
	_, err := Scan(strings.NewReader(strings.Join([]string{
		`ErrorId MsgDm::A = { ErrorOf( ES_DM, 1, E_INFO, EV_NONE, 0 ), "a" } ;`,
		``,
		`/* start`,
		`   middle`,
		`   end */ int x;`,
	}, "\n")))
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T: %v", err, err)
	require.Equal(t, 5, parseErr.Line)
	require.Contains(t, parseErr.Msg, "after end of block comment")
	require.Equal(t, `   end */ int x;`, parseErr.Text)

	// Code before the start of a block comment.
	_, err = Scan(strings.NewReader("\nint x; /* comment */\n"))
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, 2, parseErr.Line)
	require.Contains(t, parseErr.Msg, "before start of block comment")

	// Error messages include the line number.
	require.ErrorContains(t, err, "line 2:")

	// A block comment start after a line comment marker is still a block comment start.
	for _, src := range []string{
		"// see /* below\n",
		`ErrorId MsgDm::A = { ErrorOf( ES_DM, 1, E_INFO, EV_NONE, 0 ), "a" } ; // old /* style` + "\n",
	} {
		_, err = Scan(strings.NewReader(src))
		require.Truef(t, errors.As(err, &parseErr), "expected *ParseError for %q, got %v", src, err)
		require.Equal(t, 1, parseErr.Line)
		require.Contains(t, parseErr.Msg, "before start of block comment")
	}
}

func TestPreprocessorLines(t *testing.T) {
	records := scanString(t, strings.Join([]string{
		`# include <error.h>`,
		`#define ErrorOf( a, b, c, d, e ) something`,
		`  # if 0`,
		`ErrorId MsgDm::A = { ErrorOf( ES_DM, 1, E_INFO, EV_NONE, 0 ), "a" } ;`,
		`# endif`,
	}, "\n"))
	require.Len(t, records, 1)
	require.Equal(t, "A", records[0].Name)
}

func TestMultipleRecordsPerLine(t *testing.T) {
	records := scanString(t,
		`ErrorId A = { ErrorOf(ES_DM,7,E_INFO,EV_NONE,0), "a" }; ErrorId B = { ErrorOf(ES_DM,8,E_INFO,EV_NONE,1), "b" };`)
	require.Len(t, records, 2)
	require.Equal(t, "A", records[0].Name)
	require.Equal(t, "B", records[1].Name)
	require.Equal(t, "1", records[1].ArgCount)
}

func TestCodeOverflow(t *testing.T) {
	_, err := Scan(strings.NewReader(
		`ErrorId MsgDm::Big = { ErrorOf( ES_DM, 99999999999999999999999, E_INFO, EV_NONE, 0 ), "big" } ;`))
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Contains(t, parseErr.Msg, "Big")
}

func TestScannerNext(t *testing.T) {
	s := NewScanner(strings.NewReader(strings.Join([]string{
		`ErrorId MsgDm::A = { ErrorOf( ES_DM, 1, E_INFO, EV_NONE, 0 ), "a" } ;`,
		`/* x */ oops`,
	}, "\n")))
	record, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, "A", record.Name)
	_, err = s.Next()
	require.Error(t, err)
	require.NotEqual(t, io.EOF, err)
	// Sticky error.
	_, err2 := s.Next()
	require.Equal(t, err, err2)
	require.Equal(t, 2, s.LineNumber())

	s = NewScanner(strings.NewReader("int unrelated;\n"))
	_, err = s.Next()
	require.Equal(t, io.EOF, err)
	_, err = s.Next()
	require.Equal(t, io.EOF, err)
}

func BenchmarkScan(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("// comment line\n")
		sb.WriteString(`ErrorId MsgDm::SomeMessage = { ErrorOf( ES_DM, 1, E_FAILED, EV_USAGE, 2 ), "Some %arg% text." } ;`)
		sb.WriteString("\n")
	}
	source := sb.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = must.M1(Scan(strings.NewReader(source)))
	}
}
