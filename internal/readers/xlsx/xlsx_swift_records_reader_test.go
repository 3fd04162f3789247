package xlsx_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	xlsxreader "github.com/zdziszkee/swift-registry/internal/readers/xlsx"
)

func TestXLSXReader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "XLSX Reader Suite")
}

// buildWorkbook writes rows into the first sheet of a fresh workbook
// and returns the serialized file.
func buildWorkbook(rows [][]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.SetSheetRow(sheet, cell, &row)).To(Succeed())
	}

	buf, err := f.WriteToBuffer()
	Expect(err).NotTo(HaveOccurred())
	return buf
}

var _ = Describe("XLSXSwiftRecordsReader", func() {
	reader := xlsxreader.NewXLSXSwiftRecordsReader()

	It("should read records from the first sheet", func() {
		buf := buildWorkbook([][]any{
			{"COUNTRY ISO2 CODE", "SWIFT CODE", "CODE TYPE", "NAME", "ADDRESS", "TOWN NAME", "COUNTRY NAME", "TIME ZONE"},
			{"US", "ABCDUS33XXX", "BIC11", "Test Bank", "123 Main St", "New York", "UNITED STATES", "America/New_York"},
			{"US", "ABCDUS33001", "BIC11", "Test Branch", "", "Boston", "UNITED STATES", "America/New_York"},
		})

		records, err := reader.ReadRecords(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[0].SwiftCode).To(Equal("ABCDUS33XXX"))
		Expect(records[0].BankName).To(Equal("Test Bank"))
		Expect(records[0].CountryISOCode).To(Equal("US"))
		Expect(records[0].CountryName).To(Equal("UNITED STATES"))
		Expect(records[1].SwiftCode).To(Equal("ABCDUS33001"))
		Expect(records[1].Index).To(Equal(2))
	})

	It("should tolerate rows truncated at trailing empty cells", func() {
		buf := buildWorkbook([][]any{
			{"SWIFT CODE", "NAME", "ADDRESS", "COUNTRY ISO2 CODE", "COUNTRY NAME"},
			{"ABCDUS33XXX", "Test Bank"},
		})

		records, err := reader.ReadRecords(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].CountryISOCode).To(Equal(""))
		Expect(records[0].CountryName).To(Equal(""))
	})

	It("should return a header error when a required column is missing", func() {
		buf := buildWorkbook([][]any{
			{"SWIFT CODE", "NAME", "ADDRESS", "COUNTRY ISO2 CODE"},
			{"ABCDUS33XXX", "Test Bank", "123 Main St", "US"},
		})

		_, err := reader.ReadRecords(buf)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("COUNTRY NAME"))
	})

	It("should reject input that is not a workbook", func() {
		_, err := reader.ReadRecords(bytes.NewReader([]byte("not an xlsx file")))
		Expect(err).To(HaveOccurred())
	})
})
