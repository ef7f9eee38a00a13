package docx_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndagen/internal/docx"
	"ndagen/internal/docx/docxtest"
	"ndagen/internal/domain"
)

const (
	namePH    = domain.DefaultNamePlaceholder
	addressPH = domain.DefaultAddressPlaceholder
)

func replacements(name, address string) map[string]string {
	return map[string]string{namePH: name, addressPH: address}
}

func standardTemplate(t *testing.T) *docx.Template {
	t.Helper()
	data := docxtest.Build(
		docxtest.Paragraph("保密协议"),
		docxtest.Paragraph("甲方：", namePH, "，地址：", addressPH),
		docxtest.Table([]string{"乙方名称", namePH}, []string{"乙方地址", addressPH}),
	)
	tpl, err := docx.Parse(data, "memory", namePH, addressPH)
	require.NoError(t, err)
	return tpl
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestLoad_NotFound(t *testing.T) {
	_, err := docx.Load(filepath.Join(t.TempDir(), "missing.docx"), namePH)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, os.WriteFile(path, docxtest.Build(docxtest.Paragraph(namePH, addressPH)), 0o600))

	tpl, err := docx.Load(path, namePH, addressPH)
	require.NoError(t, err)
	assert.Equal(t, path, tpl.Source())
	assert.Positive(t, tpl.Size())
}

func TestParse_MissingPlaceholders(t *testing.T) {
	data := docxtest.Build(docxtest.Paragraph("甲方：", namePH))

	_, err := docx.Parse(data, "memory", namePH, addressPH)

	assert.ErrorIs(t, err, domain.ErrTemplateInvalid)
	var missing *docx.MissingPlaceholdersError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{addressPH}, missing.Missing)
}

func TestParse_PlaceholderSplitAcrossRuns(t *testing.T) {
	data := docxtest.Build(docxtest.Paragraph("[千寻智能", "(杭州)", "科技有限公司]"))

	tpl, err := docx.Parse(data, "memory", namePH)

	require.NoError(t, err)
	assert.Equal(t, []string{namePH}, tpl.Paragraphs())
}

func TestParse_NotAZip(t *testing.T) {
	_, err := docx.Parse([]byte("plain text"), "memory")
	assert.Error(t, err)
}

func TestParse_NoDocumentPart(t *testing.T) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	_, _ = zw.Create("word/styles.xml")
	require.NoError(t, zw.Close())

	_, err := docx.Parse(buf.Bytes(), "memory")
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestFill_ReplacesParagraphText(t *testing.T) {
	data := docxtest.Build(docxtest.Paragraph("甲方：[千寻智能(杭州)科技有限公司]，地址：[浙江省...401室-38]"))
	tpl, err := docx.Parse(data, "memory")
	require.NoError(t, err)

	out, err := tpl.Fill(map[string]string{
		"[千寻智能(杭州)科技有限公司]": "测试公司A",
		"[浙江省...401室-38]":      "测试地址B",
	})
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"甲方：测试公司A，地址：测试地址B"}, paras)
}

func TestFill_RemovesEveryPlaceholder(t *testing.T) {
	tpl := standardTemplate(t)

	out, err := tpl.Fill(replacements("测试公司A", "测试地址B"))
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	text := strings.Join(paras, "\n")
	assert.NotContains(t, text, namePH)
	assert.NotContains(t, text, addressPH)
	assert.Contains(t, text, "测试公司A")
	assert.Contains(t, text, "测试地址B")
	assert.Contains(t, paras, "乙方名称")
	assert.Contains(t, paras, "测试公司A")
}

func TestFill_NestedTableCells(t *testing.T) {
	nested := `<w:tbl><w:tr><w:tc>` +
		docxtest.Paragraph("外层") +
		docxtest.Table([]string{namePH}) +
		`</w:tc></w:tr></w:tbl>`
	tpl, err := docx.Parse(docxtest.Build(nested), "memory", namePH)
	require.NoError(t, err)

	out, err := tpl.Fill(replacements("内层公司", "x"))
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"外层", "内层公司"}, paras)
}

func TestFill_CollapsesRunsIntoFirst(t *testing.T) {
	p := docxtest.RawParagraph(docxtest.BoldRun("甲方：") + docxtest.Run("[千寻智能") + docxtest.Run("(杭州)科技有限公司]"))
	tpl, err := docx.Parse(docxtest.Build(p), "memory", namePH)
	require.NoError(t, err)

	out, err := tpl.Fill(replacements("测试公司A", ""))
	require.NoError(t, err)

	xml := readPart(t, out.Bytes(), "word/document.xml")
	assert.Contains(t, xml, "<w:b/>")
	assert.Equal(t, 1, strings.Count(xml, "<w:t "))
	assert.Contains(t, xml, "甲方：测试公司A")
	assert.Equal(t, 1, strings.Count(xml, "<w:r>"))
	assert.Equal(t, 2, strings.Count(xml, "<w:r/>"))
}

func TestFill_ParagraphWithoutRunsUntouched(t *testing.T) {
	tpl, err := docx.Parse(docxtest.Build("<w:p/>", docxtest.Paragraph(namePH)), "memory", namePH)
	require.NoError(t, err)

	out, err := tpl.Fill(replacements("A", "B"))
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A"}, paras)
}

func TestFill_TabsAndBreaksSurvive(t *testing.T) {
	p := docxtest.RawParagraph(`<w:r><w:t>甲方：</w:t><w:tab/><w:t>` + namePH + `</w:t><w:br/><w:t>完</w:t></w:r>`)
	tpl, err := docx.Parse(docxtest.Build(p), "memory", namePH)
	require.NoError(t, err)

	out, err := tpl.Fill(replacements("公司", ""))
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"甲方：\t公司\n完"}, paras)
	xml := readPart(t, out.Bytes(), "word/document.xml")
	assert.Contains(t, xml, "<w:tab/>")
	assert.Contains(t, xml, "<w:br/>")
}

func TestFill_LiteralMatchOnly(t *testing.T) {
	tpl, err := docx.Parse(docxtest.Build(docxtest.Paragraph("a.c abc [X]")), "memory")
	require.NoError(t, err)

	out, err := tpl.Fill(map[string]string{"a.c": "1", "[x]": "2"})
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"1 abc [X]"}, paras)
}

func TestFill_EscapesMarkupInValues(t *testing.T) {
	tpl := standardTemplate(t)

	out, err := tpl.Fill(replacements("A&B <Co>", "Room \"1\""))
	require.NoError(t, err)

	paras, err := docx.ExtractParagraphs(out.Bytes())
	require.NoError(t, err)
	assert.Contains(t, strings.Join(paras, "\n"), "A&B <Co>")
}

func TestFill_IdempotentAcrossLoads(t *testing.T) {
	first := standardTemplate(t)
	second := standardTemplate(t)
	repl := replacements("测试公司A", "测试地址B")

	a, err := first.Fill(repl)
	require.NoError(t, err)
	b, err := second.Fill(repl)
	require.NoError(t, err)

	pa, err := docx.ExtractParagraphs(a.Bytes())
	require.NoError(t, err)
	pb, err := docx.ExtractParagraphs(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestFill_TemplateUnchanged(t *testing.T) {
	tpl := standardTemplate(t)
	before := tpl.Bytes()

	_, err := tpl.Fill(replacements("A", "B"))
	require.NoError(t, err)

	assert.Equal(t, before, tpl.Bytes())
	assert.Empty(t, tpl.Missing(namePH, addressPH))
}

func TestFill_CopiesOtherParts(t *testing.T) {
	tpl := standardTemplate(t)

	out, err := tpl.Fill(replacements("A", "B"))
	require.NoError(t, err)

	assert.Equal(t, readPart(t, tpl.Bytes(), "_rels/.rels"), readPart(t, out.Bytes(), "_rels/.rels"))
	assert.Equal(t, readPart(t, tpl.Bytes(), "[Content_Types].xml"), readPart(t, out.Bytes(), "[Content_Types].xml"))
}

func TestLocate(t *testing.T) {
	tpl := standardTemplate(t)

	assert.Equal(t, []int{1, 3}, tpl.Locate(namePH))
	assert.Empty(t, tpl.Locate("不存在"))
}
