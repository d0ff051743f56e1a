package csvsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

func requireState(t *testing.T, err error, state model.ErrorState) *model.SourceError {
	t.Helper()
	require.Error(t, err)
	var srcErr *model.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, state, srcErr.State)
	return srcErr
}

func TestParse_ValidTable(t *testing.T) {
	input := "Date,Password\n01/06/2024,Sunf10wer!\n02/06/2024,Ra1nyDay$\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, []model.PasswordRecord{
		{Date: "01/06/2024", Password: "Sunf10wer!"},
		{Date: "02/06/2024", Password: "Ra1nyDay$"},
	}, result.Records)
	assert.Empty(t, result.Warnings)
}

func TestParse_TrimsHeadersAndValues(t *testing.T) {
	input := " Date , Password \n 01/06/2024 ,  Secret1  \n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, model.PasswordRecord{Date: "01/06/2024", Password: "Secret1"}, result.Records[0])
}

func TestParse_StripsBOMAndCRLF(t *testing.T) {
	input := "\xEF\xBB\xBFDate,Password\r\n01/06/2024,Secret1\r\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, "Secret1", result.Records[0].Password)
}

func TestParse_ExtraColumnsAndReorderedHeader(t *testing.T) {
	input := "Note,Password,Date\nhello,Secret1,01/06/2024\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, model.PasswordRecord{Date: "01/06/2024", Password: "Secret1"}, result.Records[0])
}

func TestParse_QuotedPasswordWithComma(t *testing.T) {
	input := "Date,Password\n01/06/2024,\"a,b\"\"c\"\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, `a,b"c`, result.Records[0].Password)
}

func TestParse_SkipsInvalidRowsWithWarnings(t *testing.T) {
	input := "Date,Password\n" +
		"01/06/2024,Good\n" +
		",NoDate\n" +
		"02/06/2024,\n" +
		"31/02/2024,BadDate\n" +
		"\n" +
		"2024-06-03,WrongLayout\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, []model.PasswordRecord{{Date: "01/06/2024", Password: "Good"}}, result.Records)
	assert.Equal(t, []string{
		"Row 3: Missing date or password",
		"Row 4: Missing date or password",
		`Row 5: Invalid date format "31/02/2024" (expected DD/MM/YYYY)`,
		`Row 7: Invalid date format "2024-06-03" (expected DD/MM/YYYY)`,
	}, result.Warnings)
}

func TestParse_DelimiterOnlyRowsAreWarned(t *testing.T) {
	input := "Date,Password\n" +
		"01/06/2024,Good\n" +
		",\n" +
		" , \n" +
		"   \n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Equal(t, []model.PasswordRecord{{Date: "01/06/2024", Password: "Good"}}, result.Records)
	assert.Equal(t, []string{
		"Row 3: Missing date or password",
		"Row 4: Missing date or password",
	}, result.Warnings)
}

func TestParse_KeepsDuplicateDates(t *testing.T) {
	input := "Date,Password\n01/06/2024,first\n01/06/2024,second\n"

	result, err := Parse([]byte(input))

	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
}

func TestParse_BlankInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t\n", "\xEF\xBB\xBF"} {
		_, err := Parse([]byte(input))
		srcErr := requireState(t, err, model.ErrorStateInvalidCSVFormat)
		assert.Contains(t, srcErr.UserMessage(), "empty")
	}
}

func TestParse_MissingColumns(t *testing.T) {
	for _, input := range []string{
		"Day,Password\n01/06/2024,x\n",
		"Date,Pass\n01/06/2024,x\n",
		"date,password\n01/06/2024,x\n", // case-sensitive
	} {
		_, err := Parse([]byte(input))
		srcErr := requireState(t, err, model.ErrorStateInvalidCSVFormat)
		assert.Contains(t, srcErr.UserMessage(), "missing required columns")
	}
}

func TestParse_HeaderOnlyIsInvalid(t *testing.T) {
	_, err := Parse([]byte("Date,Password\n"))

	srcErr := requireState(t, err, model.ErrorStateInvalidCSVFormat)
	assert.Contains(t, srcErr.UserMessage(), "No valid password entries")
}

func TestParse_AllRowsInvalidIsAnErrorNotEmptySuccess(t *testing.T) {
	input := "Date,Password\n2024/06/01,a\n32/01/2024,b\n01/13/2024,c\n"

	result, err := Parse([]byte(input))

	requireState(t, err, model.ErrorStateInvalidCSVFormat)
	assert.Empty(t, result.Records)
}

func TestParse_StructuralErrors(t *testing.T) {
	for _, input := range []string{
		"Date,Password\n01/06/2024,a\"b\n",    // bare quote
		"Date,Password\n01/06/2024,a,extra\n", // too many fields
		"Date,Password\n01/06/2024\n",         // too few fields
		"Date,Password\n\"01/06/2024,unterminated\n",
	} {
		_, err := Parse([]byte(input))
		requireState(t, err, model.ErrorStateParsingError)
	}
}
