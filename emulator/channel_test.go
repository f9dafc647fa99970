package emulator_test

import (
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/brainfuck/config"
	"github.com/ezrec/brainfuck/cpu"
	"github.com/ezrec/brainfuck/emulator"
	"github.com/ezrec/brainfuck/memory"
)

var _ = Describe("Emulator channels", func() {
	var (
		mockCtrl   *gomock.Controller
		mockInput  *MockInput
		mockOutput *MockOutput
	)

	compile := func(source string) *emulator.Emulator {
		emu, err := emulator.Compile(source, config.Default())
		Expect(err).NotTo(HaveOccurred())
		emu.Cpu.Input = mockInput
		emu.Cpu.Output = mockOutput
		emu.Reset()
		return emu
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockInput = NewMockInput(mockCtrl)
		mockOutput = NewMockOutput(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should read exactly one byte per input instruction", func() {
		gomock.InOrder(
			mockInput.EXPECT().Receive().Return(byte('h'), true, nil),
			mockInput.EXPECT().Receive().Return(byte('i'), true, nil),
		)
		mockOutput.EXPECT().Send('i').Return(nil)

		emu := compile(",>,.")
		output, err := emu.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(Equal("i"))
		Expect(emu.Cpu.Memory.Get(0)).To(Equal(memory.Cell('h')))
	})

	It("should leave the cell unchanged when the input is exhausted", func() {
		mockInput.EXPECT().Receive().Return(byte(0), false, nil)

		emu := compile("+++,")
		_, err := emu.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(emu.Cpu.Memory.Get(0)).To(Equal(memory.Cell(3)))
	})

	It("should halt on an input failure", func() {
		failure := errors.New("broken pipe")
		mockInput.EXPECT().Receive().Return(byte(0), false, failure)

		emu := compile("+.,+.")
		mockOutput.EXPECT().Send(rune(1)).Return(nil)
		output, err := emu.Run()

		Expect(err).To(MatchError(cpu.ErrIo))
		Expect(errors.Is(err, failure)).To(BeTrue())
		Expect(output).To(Equal("\x01"))
		Expect(emu.Cpu.Ip).To(Equal(2))

		var runtime *emulator.ErrRuntime
		Expect(errors.As(err, &runtime)).To(BeTrue())
		Expect(runtime.Ip).To(Equal(2))
	})

	It("should stream each emitted rune in order", func() {
		gomock.InOrder(
			mockOutput.EXPECT().Send('A').Return(nil),
			mockOutput.EXPECT().Send('B').Return(nil),
		)

		source := ""
		for range 'A' {
			source += "+"
		}
		emu := compile(source + ".+.")
		output, err := emu.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(Equal("AB"))
	})

	It("should not emit values that are not code points", func() {
		emu := compile("-.")
		output, err := emu.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(BeEmpty())
	})

	It("should halt on an output failure", func() {
		mockOutput.EXPECT().Send(rune(1)).Return(errors.New("closed"))

		emu := compile("+.+.")
		_, err := emu.Run()

		Expect(err).To(MatchError(cpu.ErrIo))
		Expect(emu.Cpu.Ip).To(Equal(1))
	})

	It("should never touch the channels for a program without I/O", func() {
		emu := compile("++[>+<-]")
		_, err := emu.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(emu.Cpu.Memory.Get(1)).To(Equal(memory.Cell(2)))
	})
})
