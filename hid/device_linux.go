//go:build linux

package hid

import (
	"encoding/binary"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is an open Linux hidraw character device (§4.6).
type Device struct {
	path string
	f    *os.File
	fd   int
	mu   sync.Mutex
}

// Open opens the hidraw device at path (e.g. "/dev/hidraw2") for read/write.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, newIoError("open", err)
	}
	return &Device{path: path, f: f, fd: int(f.Fd())}, nil
}

func (d *Device) Close() error {
	if err := d.f.Close(); err != nil {
		return newIoError("close", err)
	}
	return nil
}

func (d *Device) Path() string { return d.path }

// Linux hidraw ioctl numbers (linux/hidraw.h), reproduced without cgo.
const (
	hidiocGRDESCSIZE = 0x01
	hidiocGRDESC     = 0x02
	hidiocGRAWINFO   = 0x03
	hidiocGRAWNAME   = 0x04
	hidiocGRAWPHYS   = 0x05
	hidiocSFEATURE   = 0x06
	hidiocGFEATURE   = 0x07
	hidiocSINPUT     = 0x09
	hidiocGINPUT     = 0x0A
	hidiocSOUTPUT    = 0x0B
	hidiocGOUTPUT    = 0x0C
)

const (
	iocNrbits   = 8
	iocTypebits = 8
	iocSizebits = 14
	iocDirbits  = 2

	iocNrshift   = 0
	iocTypeshift = iocNrshift + iocNrbits
	iocSizeshift = iocTypeshift + iocTypebits
	iocDirshift  = iocSizeshift + iocSizebits

	iocNone  = 0
	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return (dir << iocDirshift) | (typ << iocTypeshift) | (nr << iocNrshift) | (size << iocSizeshift)
}

func hidIOCFixed(dir uintptr, nr byte, size uintptr) uintptr {
	return ioc(dir, uintptr('H'), uintptr(nr), size)
}

func hidIOCSized(dir uintptr, nr byte, size int) uintptr {
	return ioc(dir, uintptr('H'), uintptr(nr), uintptr(size))
}

func (d *Device) ioctl(req uintptr, buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var ptr unsafe.Pointer
	if len(buf) > 0 {
		ptr = unsafe.Pointer(&buf[0])
	}
	ret, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(ptr))
	if errno != 0 {
		return 0, newIoError("ioctl", errno)
	}
	return int(ret), nil
}

// ReportDescriptor retrieves the raw HID Report Descriptor via
// HIDIOCGRDESCSIZE followed by HIDIOCGRDESC (§4.6).
func (d *Device) ReportDescriptor() ([]byte, error) {
	var size int32
	sizeBuf := make([]byte, 4)
	if _, err := d.ioctl(hidIOCFixed(iocRead, hidiocGRDESCSIZE, 4), sizeBuf); err != nil {
		return nil, err
	}
	size = int32(binary.LittleEndian.Uint32(sizeBuf))
	if size < 0 || int(size) > maxDescriptorSize {
		return nil, newInvalidArgumentError("report descriptor size out of range: %d", size)
	}

	// struct hidraw_report_descriptor { __u32 size; __u8 value[4096]; }
	descBuf := make([]byte, 4+maxDescriptorSize)
	binary.LittleEndian.PutUint32(descBuf[0:4], uint32(size))
	if _, err := d.ioctl(hidIOCFixed(iocRead, hidiocGRDESC, uintptr(len(descBuf))), descBuf); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, descBuf[4:4+size])
	return out, nil
}

// Info retrieves the device name, physical address, and bus/vendor/product
// triple (§3.1, §4.6).
func (d *Device) Info() (DeviceInfo, error) {
	info := DeviceInfo{Path: d.path}

	// struct hidraw_devinfo { __u32 bustype; __s16 vendor; __s16 product; }
	rawInfo := make([]byte, 8)
	if _, err := d.ioctl(hidIOCFixed(iocRead, hidiocGRAWINFO, 8), rawInfo); err != nil {
		return info, err
	}
	info.BusType = uint16(binary.LittleEndian.Uint32(rawInfo[0:4]))
	info.VendorID = binary.LittleEndian.Uint16(rawInfo[4:6])
	info.ProductID = binary.LittleEndian.Uint16(rawInfo[6:8])

	name := make([]byte, maxRawNameSize)
	if _, err := d.ioctl(hidIOCSized(iocRead, hidiocGRAWNAME, len(name)), name); err == nil {
		info.Name = nulTerminated(name)
	}

	phys := make([]byte, maxRawNameSize)
	if _, err := d.ioctl(hidIOCSized(iocRead, hidiocGRAWPHYS, len(phys)), phys); err == nil {
		info.Phys = nulTerminated(phys)
	}

	return info, nil
}

func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// GetFeatureReport issues HIDIOCGFEATURE. The returned slice's first byte is
// the Report ID, matching §6's buffer convention.
func (d *Device) GetFeatureReport(reportID byte, length int) ([]byte, error) {
	return d.getReport(hidiocGFEATURE, reportID, length, "feature-get")
}

// SetFeatureReport issues HIDIOCSFEATURE. data's first byte must be the
// Report ID.
func (d *Device) SetFeatureReport(data []byte) error {
	return d.setReport(hidiocSFEATURE, data, "feature-set")
}

// GetInputReport issues HIDIOCGINPUT.
func (d *Device) GetInputReport(reportID byte, length int) ([]byte, error) {
	return d.getReport(hidiocGINPUT, reportID, length, "recv")
}

// SetOutputReport issues HIDIOCSOUTPUT.
func (d *Device) SetOutputReport(data []byte) error {
	return d.setReport(hidiocSOUTPUT, data, "send")
}

// getReport issues a sized read ioctl (HIDIOCGFEATURE/HIDIOCGINPUT). The
// ioctl's return value is the number of bytes the kernel actually filled;
// a short result surfaces as a ProtocolShortError rather than silently
// handing back a partially-zeroed buffer.
func (d *Device) getReport(nr byte, reportID byte, length int, op string) ([]byte, error) {
	if length <= 0 {
		return nil, newInvalidArgumentError("%s: length must be positive, got %d", op, length)
	}
	buf := make([]byte, 1+length)
	buf[0] = reportID
	n, err := d.ioctl(hidIOCSized(iocRead|iocWrite, nr, len(buf)), buf)
	if err != nil {
		return nil, err
	}
	if n < len(buf) {
		return nil, newProtocolShortError(op, len(buf), n)
	}
	return buf, nil
}

func (d *Device) setReport(nr byte, data []byte, op string) error {
	if len(data) == 0 {
		return newInvalidArgumentError("%s: buffer must not be empty", op)
	}
	buf := append([]byte(nil), data...)
	_, err := d.ioctl(hidIOCSized(iocRead|iocWrite, nr, len(buf)), buf)
	return err
}
