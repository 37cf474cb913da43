package substitution_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/smartguard/substitution"
)

var _ = Describe("LoadMapping", func() {
	It("parses symbol=letter lines in order", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader("@=a\n0=o\n$=s\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{
			{Symbol: "@", Letter: "a"},
			{Symbol: "0", Letter: "o"},
			{Symbol: "$", Letter: "s"},
		}))
	})

	It("trims whitespace and skips lines without an equals sign", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader("  @=a  \n\njunk\n3=e\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{
			{Symbol: "@", Letter: "a"},
			{Symbol: "3", Letter: "e"},
		}))
	})

	It("splits on the first equals sign only", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader("==e\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(BeEmpty())

		mapping, err = substitution.LoadMapping(strings.NewReader("x=a=b\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{
			{Symbol: "x", Letter: "a=b"},
		}))
	})

	It("skips lines with an empty symbol", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader("=a\n1=l\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{
			{Symbol: "1", Letter: "l"},
		}))
	})

	It("lets a repeated symbol overwrite its letter without moving it", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader("1=l\n0=o\n1=i\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{
			{Symbol: "1", Letter: "i"},
			{Symbol: "0", Letter: "o"},
		}))

		Expect(substitution.NewNormalizer(mapping).Normalize("adm1n")).To(Equal("admin"))
	})

	It("returns an empty mapping for empty input", func() {
		mapping, err := substitution.LoadMapping(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).NotTo(BeNil())
		Expect(mapping).To(BeEmpty())
	})
})

var _ = Describe("LoadMappingFile", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = ioutil.TempDir("", "substitution")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	It("loads the file", func() {
		path := filepath.Join(tmpDir, "subs.txt")
		Expect(ioutil.WriteFile(path, []byte("@=a\n"), 0644)).To(Succeed())

		mapping, err := substitution.LoadMappingFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(mapping).To(Equal(substitution.Mapping{{Symbol: "@", Letter: "a"}}))
	})

	It("returns ErrMappingNotFound when the file does not exist", func() {
		_, err := substitution.LoadMappingFile(filepath.Join(tmpDir, "missing.txt"))
		Expect(err).To(Equal(substitution.ErrMappingNotFound))
	})
})
